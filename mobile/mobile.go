//go:build mobile

// Package mobile binds the game for ebitenmobile builds:
//
//	ebitenmobile bind -target android -javapkg com.flybird -o flybird.aar ./mobile
package mobile

import (
	"github.com/automoto/flybird/game"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2/mobile"
)

func init() {
	g, err := game.NewGame(0)
	if err != nil {
		log.Fatal("init game", "error", err)
	}
	mobile.SetGame(g)
}

// Dummy is exported so the bind tool emits a package for the host app.
func Dummy() {}
