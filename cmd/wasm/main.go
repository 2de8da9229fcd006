//go:build js && wasm

package main

import (
	"context"
	"encoding/json"
	"syscall/js"

	"seokit/config"
	"seokit/internal/adapter/cache"
	"seokit/internal/logger"
	"seokit/internal/usecase"
)

var (
	analysis *usecase.AnalyzeUseCase
	reports  *cache.ReportCache
	analyzer *cache.CachedAnalyzer
)

func init() {
	cfg := config.DefaultConfig()
	logger.Init(logger.TestConfig())
	analysis = usecase.NewAnalyzeUseCase(cfg.Analysis)
	reports = cache.NewReportCache(cfg.Cache.Size, cfg.Cache.TTL)
	analyzer = cache.NewCachedAnalyzer(analysis, reports)
}

func main() {
	c := make(chan struct{})

	js.Global().Set("seoReadability", js.FuncOf(readability))
	js.Global().Set("seoKeywords", js.FuncOf(keywords))
	js.Global().Set("seoTfIdf", js.FuncOf(tfidf))
	js.Global().Set("seoSentiment", js.FuncOf(sentiment))
	js.Global().Set("seoAnalyze", js.FuncOf(analyze))
	js.Global().Set("seoClearCache", js.FuncOf(clearCache))

	<-c
}

func readability(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return makeError("usage: seoReadability(text)")
	}
	return makeResult(analysis.Readability(args[0].String()))
}

func keywords(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return makeError("usage: seoKeywords(text, [topN])")
	}
	return makeResult(analysis.Keywords(args[0].String(), intArg(args, 1)))
}

func tfidf(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return makeError("usage: seoTfIdf(text, [comparison], [topN])")
	}
	return makeResult(analysis.TfIdf(args[0].String(), stringArg(args, 1), intArg(args, 2)))
}

func sentiment(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return makeError("usage: seoSentiment(text)")
	}
	return makeResult(analysis.Sentiment(args[0].String()))
}

func analyze(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return makeError("usage: seoAnalyze(text, [comparison])")
	}
	report, err := analyzer.Analyze(context.Background(), args[0].String(), stringArg(args, 1))
	if err != nil {
		return makeError("analysis failed: " + err.Error())
	}
	return makeResult(report)
}

func clearCache(this js.Value, args []js.Value) interface{} {
	reports.Invalidate()
	return makeResult(map[string]interface{}{
		"success": true,
	})
}

// stringArg treats a missing, null or undefined argument as absent.
func stringArg(args []js.Value, i int) *string {
	if len(args) <= i || args[i].IsNull() || args[i].IsUndefined() {
		return nil
	}
	s := args[i].String()
	return &s
}

func intArg(args []js.Value, i int) int {
	if len(args) <= i || args[i].Type() != js.TypeNumber {
		return 0
	}
	return args[i].Int()
}

func makeError(msg string) interface{} {
	result, _ := json.Marshal(map[string]interface{}{
		"error": msg,
	})
	return string(result)
}

func makeResult(data interface{}) interface{} {
	result, err := json.Marshal(data)
	if err != nil {
		return makeError("encoding failed: " + err.Error())
	}
	return string(result)
}
