package browser

import (
	"context"
	"fmt"
	"log"
	"os/exec"
	"runtime"
	"time"
)

// Command возвращает команду ОС для открытия URL в браузере по умолчанию
func Command(goos, url string) (string, []string) {
	switch goos {
	case "darwin":
		return "open", []string{url}
	case "windows":
		return "cmd", []string{"/c", "start", "", url}
	default:
		return "xdg-open", []string{url}
	}
}

type Launcher struct {
	goos string
	run  func(ctx context.Context, name string, args ...string) error
}

func NewLauncher() *Launcher {
	return &Launcher{
		goos: runtime.GOOS,
		run: func(ctx context.Context, name string, args ...string) error {
			return exec.CommandContext(ctx, name, args...).Run()
		},
	}
}

func (l *Launcher) Open(ctx context.Context, url string) error {
	name, args := Command(l.goos, url)
	if err := l.run(ctx, name, args...); err != nil {
		return fmt.Errorf("running %s: %w", name, err)
	}
	return nil
}

// OpenAfter waits for delay, then opens url. Failures are only logged.
func (l *Launcher) OpenAfter(ctx context.Context, delay time.Duration, url string) {
	timer := time.NewTimer(delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return
	case <-timer.C:
	}

	log.Println("🌐 Opening browser...")
	if err := l.Open(ctx, url); err != nil {
		log.Printf("Tip: Open browser manually at %s (%v)", url, err)
	}
}
