package services_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"gincana/internal/logger"
	"gincana/internal/services"
)

func TestShareLink_RequiresBaseURL(t *testing.T) {
	_, _, _, _, settingsSvc, _ := setupServices(t)
	shareSvc := services.NewShareService(logger.New(slog.LevelError), settingsSvc)

	if _, err := shareSvc.ShareLink(context.Background()); err == nil {
		t.Error("expected error when base_url is not configured")
	}
}

func TestShareLink_TrimsTrailingSlash(t *testing.T) {
	_, _, _, _, settingsSvc, _ := setupServices(t)
	ctx := context.Background()
	shareSvc := services.NewShareService(logger.New(slog.LevelError), settingsSvc)

	if err := settingsSvc.SetBaseURL(ctx, "http://192.168.0.10:8080/"); err != nil {
		t.Fatalf("SetBaseURL failed: %v", err)
	}

	link, err := shareSvc.ShareLink(ctx)
	if err != nil {
		t.Fatalf("ShareLink failed: %v", err)
	}
	if link != "http://192.168.0.10:8080" {
		t.Errorf("unexpected link: %q", link)
	}
}

func TestShareQR_ReturnsPNG(t *testing.T) {
	_, _, _, _, settingsSvc, _ := setupServices(t)
	ctx := context.Background()
	shareSvc := services.NewShareService(logger.New(slog.LevelError), settingsSvc)

	if err := settingsSvc.SetBaseURL(ctx, "http://192.168.0.10:8080"); err != nil {
		t.Fatalf("SetBaseURL failed: %v", err)
	}

	png, err := shareSvc.ShareQR(ctx)
	if err != nil {
		t.Fatalf("ShareQR failed: %v", err)
	}
	if len(png) == 0 {
		t.Fatal("expected PNG data")
	}
	if !bytes.HasPrefix(png, []byte("\x89PNG")) {
		t.Error("expected PNG magic bytes")
	}
}
