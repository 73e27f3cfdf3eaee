package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"chrome-kit/config"
	"chrome-kit/scene"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: cfg.Level(),
	})))

	sc, err := loadScene(cfg.Scene.Path)
	if err != nil {
		slog.Error("load scene", "path", cfg.Scene.Path, "err", err)
		os.Exit(1)
	}
	for _, w := range sc.Warnings() {
		slog.Warn("scene property", "component", w.ID, "issue", w.String())
	}

	ebiten.SetWindowSize(cfg.Screen.Width, cfg.Screen.Height)
	ebiten.SetWindowTitle(cfg.Screen.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(NewGame(cfg, sc)); err != nil {
		slog.Error("run", "err", err)
		os.Exit(1)
	}
}

func loadScene(path string) (*scene.Scene, error) {
	if path == "" {
		return scene.Default()
	}
	return scene.Load(path)
}
