package rest

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/UAlbertaALTLab/recording-validation-interface-sub000/internal/service/merge"
)

var _ mergeService = &mergeServiceMock{}

type mergeServiceMock struct {
	MergeFunc     func(ctx context.Context, input merge.MergeInput) (*merge.MergeResult, error)
	AutoMergeFunc func(ctx context.Context, languageSlug string, userID *uuid.UUID) (*merge.AutoMergeResult, error)

	calls struct {
		Merge []struct {
			Ctx   context.Context
			Input merge.MergeInput
		}
		AutoMerge []struct {
			Ctx          context.Context
			LanguageSlug string
			UserID       *uuid.UUID
		}
	}
	lockMerge     sync.RWMutex
	lockAutoMerge sync.RWMutex
}

func (mock *mergeServiceMock) Merge(ctx context.Context, input merge.MergeInput) (*merge.MergeResult, error) {
	if mock.MergeFunc == nil {
		panic("mergeServiceMock.MergeFunc: method is nil but mergeService.Merge was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input merge.MergeInput
	}{Ctx: ctx, Input: input}
	mock.lockMerge.Lock()
	mock.calls.Merge = append(mock.calls.Merge, callInfo)
	mock.lockMerge.Unlock()
	return mock.MergeFunc(ctx, input)
}

func (mock *mergeServiceMock) MergeCalls() []struct {
	Ctx   context.Context
	Input merge.MergeInput
} {
	mock.lockMerge.RLock()
	calls := mock.calls.Merge
	mock.lockMerge.RUnlock()
	return calls
}

func (mock *mergeServiceMock) AutoMerge(ctx context.Context, languageSlug string, userID *uuid.UUID) (*merge.AutoMergeResult, error) {
	if mock.AutoMergeFunc == nil {
		panic("mergeServiceMock.AutoMergeFunc: method is nil but mergeService.AutoMerge was just called")
	}
	callInfo := struct {
		Ctx          context.Context
		LanguageSlug string
		UserID       *uuid.UUID
	}{Ctx: ctx, LanguageSlug: languageSlug, UserID: userID}
	mock.lockAutoMerge.Lock()
	mock.calls.AutoMerge = append(mock.calls.AutoMerge, callInfo)
	mock.lockAutoMerge.Unlock()
	return mock.AutoMergeFunc(ctx, languageSlug, userID)
}

func (mock *mergeServiceMock) AutoMergeCalls() []struct {
	Ctx          context.Context
	LanguageSlug string
	UserID       *uuid.UUID
} {
	mock.lockAutoMerge.RLock()
	calls := mock.calls.AutoMerge
	mock.lockAutoMerge.RUnlock()
	return calls
}
