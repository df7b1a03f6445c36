package rest

import (
	"context"
	"sync"

	"github.com/UAlbertaALTLab/recording-validation-interface-sub000/internal/orthography"
	"github.com/UAlbertaALTLab/recording-validation-interface-sub000/internal/service/lookup"
)

var _ lookupService = &lookupServiceMock{}

type lookupServiceMock struct {
	BulkSearchFunc      func(ctx context.Context, q lookup.BulkQuery) (*lookup.BulkResult, error)
	SearchIndexableFunc func(ctx context.Context, terms []string) ([]lookup.Descriptor, error)
	SuggestFunc         func(ctx context.Context, language string, query string, limit int) ([]orthography.Suggestion, error)

	calls struct {
		BulkSearch []struct {
			Ctx context.Context
			Q   lookup.BulkQuery
		}
		SearchIndexable []struct {
			Ctx   context.Context
			Terms []string
		}
		Suggest []struct {
			Ctx      context.Context
			Language string
			Query    string
			Limit    int
		}
	}
	lockBulkSearch      sync.RWMutex
	lockSearchIndexable sync.RWMutex
	lockSuggest         sync.RWMutex
}

func (mock *lookupServiceMock) BulkSearch(ctx context.Context, q lookup.BulkQuery) (*lookup.BulkResult, error) {
	if mock.BulkSearchFunc == nil {
		panic("lookupServiceMock.BulkSearchFunc: method is nil but lookupService.BulkSearch was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Q   lookup.BulkQuery
	}{Ctx: ctx, Q: q}
	mock.lockBulkSearch.Lock()
	mock.calls.BulkSearch = append(mock.calls.BulkSearch, callInfo)
	mock.lockBulkSearch.Unlock()
	return mock.BulkSearchFunc(ctx, q)
}

func (mock *lookupServiceMock) BulkSearchCalls() []struct {
	Ctx context.Context
	Q   lookup.BulkQuery
} {
	mock.lockBulkSearch.RLock()
	calls := mock.calls.BulkSearch
	mock.lockBulkSearch.RUnlock()
	return calls
}

func (mock *lookupServiceMock) SearchIndexable(ctx context.Context, terms []string) ([]lookup.Descriptor, error) {
	if mock.SearchIndexableFunc == nil {
		panic("lookupServiceMock.SearchIndexableFunc: method is nil but lookupService.SearchIndexable was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Terms []string
	}{Ctx: ctx, Terms: terms}
	mock.lockSearchIndexable.Lock()
	mock.calls.SearchIndexable = append(mock.calls.SearchIndexable, callInfo)
	mock.lockSearchIndexable.Unlock()
	return mock.SearchIndexableFunc(ctx, terms)
}

func (mock *lookupServiceMock) SearchIndexableCalls() []struct {
	Ctx   context.Context
	Terms []string
} {
	mock.lockSearchIndexable.RLock()
	calls := mock.calls.SearchIndexable
	mock.lockSearchIndexable.RUnlock()
	return calls
}

func (mock *lookupServiceMock) Suggest(ctx context.Context, language string, query string, limit int) ([]orthography.Suggestion, error) {
	if mock.SuggestFunc == nil {
		panic("lookupServiceMock.SuggestFunc: method is nil but lookupService.Suggest was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		Language string
		Query    string
		Limit    int
	}{Ctx: ctx, Language: language, Query: query, Limit: limit}
	mock.lockSuggest.Lock()
	mock.calls.Suggest = append(mock.calls.Suggest, callInfo)
	mock.lockSuggest.Unlock()
	return mock.SuggestFunc(ctx, language, query, limit)
}

func (mock *lookupServiceMock) SuggestCalls() []struct {
	Ctx      context.Context
	Language string
	Query    string
	Limit    int
} {
	mock.lockSuggest.RLock()
	calls := mock.calls.Suggest
	mock.lockSuggest.RUnlock()
	return calls
}
