package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/GoldeNerd2/Aicord/internal/ai"
	"github.com/GoldeNerd2/Aicord/internal/handlers"
	"github.com/GoldeNerd2/Aicord/internal/jwt"
	"github.com/GoldeNerd2/Aicord/internal/keyvalue"
	"github.com/GoldeNerd2/Aicord/internal/models"
	"github.com/GoldeNerd2/Aicord/internal/snowflake"
	"github.com/GoldeNerd2/Aicord/internal/store"

	"go.uber.org/zap"
)

func setupLogger() (*zap.SugaredLogger, error) {
	config := zap.NewProductionConfig()
	config.OutputPaths = []string{"app.log", "stdout"}
	config.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	logger, err := config.Build()
	if err != nil {
		return nil, err
	}

	sugar := logger.Sugar()
	defer logger.Sync()

	return sugar, nil
}

func readConfigFile() (models.ConfigFile, error) {
	var cfg models.ConfigFile

	configFile, err := os.Open("config.json")
	if err != nil {
		return cfg, err
	}
	defer configFile.Close()

	bytes, err := io.ReadAll(configFile)
	if err != nil {
		return cfg, err
	}

	err = json.Unmarshal(bytes, &cfg)
	if err != nil {
		return cfg, err
	}
	return cfg, nil
}

func main() {
	fmt.Println("Setting up logger...")
	sugar, err := setupLogger()
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Println("Reading config file...")
	cfg, err := readConfigFile()
	if err != nil {
		sugar.Fatal(err)
	}

	err = snowflake.Setup(cfg.SnowflakeWorkerID)
	if err != nil {
		sugar.Fatal(err)
	}

	fmt.Println("Opening persistence substrate...")
	kv, err := keyvalue.Setup(sugar, &cfg)
	if err != nil {
		sugar.Fatal(err)
	}
	defer kv.Close()

	var responder ai.Responder
	if cfg.GeminiApiKey != "" {
		fmt.Println("Connecting AI responder...")
		responder, err = ai.NewGemini(context.Background(), cfg.GeminiApiKey, cfg.GeminiModel)
		if err != nil {
			sugar.Fatal(err)
		}
	} else {
		sugar.Warn("No Gemini API key configured, AI replies are disabled")
	}

	appStore := store.New(sugar, kv, responder, store.DefaultBot())

	isHttps := (cfg.TlsCert != "" && cfg.TlsKey != "")

	jwt.Setup(cfg.JwtSecret, isHttps)

	var httpProtocol string
	if isHttps {
		httpProtocol = "https"
	} else {
		httpProtocol = "http"
	}

	fmt.Printf("Server is running on %s://%s:%s\n", httpProtocol, cfg.Address, cfg.Port)

	err = handlers.Setup(isHttps, &cfg, sugar, appStore)
	if err != nil {
		sugar.Fatal(err)
	}
}
