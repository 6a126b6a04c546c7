//go:build wireinject
// +build wireinject

package main

import (
	"github.com/google/wire"

	"github.com/yanqian/question-board/internal/bootstrap"
	"github.com/yanqian/question-board/internal/domain/question"
	"github.com/yanqian/question-board/internal/infra/config"
	httpiface "github.com/yanqian/question-board/internal/interface/http"
	"github.com/yanqian/question-board/pkg/logger"
)

func initializeApp() (*bootstrap.App, error) {
	wire.Build(
		config.Load,
		logger.New,
		provideQuestionConfig,
		provideQuestionRepository,
		provideListCache,
		question.NewService,
		httpiface.NewHandler,
		httpiface.NewRouter,
		bootstrap.NewApp,
	)
	return nil, nil
}
