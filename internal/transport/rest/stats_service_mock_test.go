package rest

import (
	"context"
	"sync"

	"github.com/UAlbertaALTLab/recording-validation-interface-sub000/internal/domain"
)

var _ statsService = &statsServiceMock{}

type statsServiceMock struct {
	ForLanguageFunc func(ctx context.Context, slug string) (*domain.LanguageStats, error)

	calls struct {
		ForLanguage []struct {
			Ctx  context.Context
			Slug string
		}
	}
	lockForLanguage sync.RWMutex
}

func (mock *statsServiceMock) ForLanguage(ctx context.Context, slug string) (*domain.LanguageStats, error) {
	if mock.ForLanguageFunc == nil {
		panic("statsServiceMock.ForLanguageFunc: method is nil but statsService.ForLanguage was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Slug string
	}{Ctx: ctx, Slug: slug}
	mock.lockForLanguage.Lock()
	mock.calls.ForLanguage = append(mock.calls.ForLanguage, callInfo)
	mock.lockForLanguage.Unlock()
	return mock.ForLanguageFunc(ctx, slug)
}

func (mock *statsServiceMock) ForLanguageCalls() []struct {
	Ctx  context.Context
	Slug string
} {
	mock.lockForLanguage.RLock()
	calls := mock.calls.ForLanguage
	mock.lockForLanguage.RUnlock()
	return calls
}
