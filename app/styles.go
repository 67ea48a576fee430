package app

import rl "github.com/gen2brain/raylib-go/raylib"

var Night = rl.Color{R: 12, G: 14, B: 17, A: 255}
var White = rl.Color{R: 250, G: 250, B: 252, A: 255}
var Yellow = rl.Color{R: 253, G: 249, B: 0, A: 255}

var NodeColors = []rl.Color{
	{R: 100, G: 150, B: 250, A: 255},
	{R: 150, G: 100, B: 250, A: 255},
	{R: 100, G: 200, B: 150, A: 255},
	{R: 230, G: 140, B: 90, A: 255},
}

const S1 = 4
const S2 = 8

const F1 = 12
const F2 = 16

const WireThickness = 2
