package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
)

func TestLoadConfigNormalization(t *testing.T) {
	viper.Reset()
	defer viper.Reset()

	dir := t.TempDir()
	cfg := []byte("SAVE_DATA_OPTION: \"Excel\"\nSTORE_BACKEND: \"MongoDB\"\nPLATFORM: \"YouTube\"\nYT_CHANNEL_LIST: \"@abbasravji, @golang\"\n")
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), cfg, 0644); err != nil {
		t.Fatal(err)
	}

	if err := LoadConfig(dir); err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}

	if AppConfig.SaveDataOption != "xlsx" {
		t.Fatalf("SaveDataOption = %q, want %q", AppConfig.SaveDataOption, "xlsx")
	}
	if AppConfig.StoreBackend != "mongodb" {
		t.Fatalf("StoreBackend = %q, want %q", AppConfig.StoreBackend, "mongodb")
	}
	if AppConfig.Platform != "youtube" {
		t.Fatalf("Platform = %q, want %q", AppConfig.Platform, "youtube")
	}
	if AppConfig.ChannelList != "@abbasravji, @golang" {
		t.Fatalf("ChannelList = %q", AppConfig.ChannelList)
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	viper.Reset()
	defer viper.Reset()

	if err := LoadConfig(t.TempDir()); err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if AppConfig.Platform != "youtube" {
		t.Fatalf("Platform default = %q", AppConfig.Platform)
	}
	if AppConfig.MaxConcurrencyNum != 1 {
		t.Fatalf("MaxConcurrencyNum default = %d", AppConfig.MaxConcurrencyNum)
	}
	if AppConfig.CrawlerMaxVideosCount != 0 {
		t.Fatalf("CrawlerMaxVideosCount default = %d", AppConfig.CrawlerMaxVideosCount)
	}
	if AppConfig.HttpTimeoutSec != 60 {
		t.Fatalf("HttpTimeoutSec default = %d", AppConfig.HttpTimeoutSec)
	}
}
