package stats

import (
	"context"
	"sync"

	statsrepo "github.com/UAlbertaALTLab/recording-validation-interface-sub000/internal/adapter/postgres/stats"
	"github.com/UAlbertaALTLab/recording-validation-interface-sub000/internal/domain"
)

var _ languageRepo = &languageRepoMock{}

type languageRepoMock struct {
	GetBySlugFunc func(ctx context.Context, slug string) (*domain.Language, error)

	calls struct {
		GetBySlug []struct {
			Ctx  context.Context
			Slug string
		}
	}
	lockGetBySlug sync.RWMutex
}

func (mock *languageRepoMock) GetBySlug(ctx context.Context, slug string) (*domain.Language, error) {
	if mock.GetBySlugFunc == nil {
		panic("languageRepoMock.GetBySlugFunc: method is nil but languageRepo.GetBySlug was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Slug string
	}{Ctx: ctx, Slug: slug}
	mock.lockGetBySlug.Lock()
	mock.calls.GetBySlug = append(mock.calls.GetBySlug, callInfo)
	mock.lockGetBySlug.Unlock()
	return mock.GetBySlugFunc(ctx, slug)
}

func (mock *languageRepoMock) GetBySlugCalls() []struct {
	Ctx  context.Context
	Slug string
} {
	mock.lockGetBySlug.RLock()
	calls := mock.calls.GetBySlug
	mock.lockGetBySlug.RUnlock()
	return calls
}

var _ statsRepo = &statsRepoMock{}

type statsRepoMock struct {
	PhraseTotalsFunc           func(ctx context.Context, languageID int64) (statsrepo.PhraseTotals, error)
	DistinctWordsFunc          func(ctx context.Context, languageID int64) (int64, error)
	TotalRecordingsFunc        func(ctx context.Context, languageID int64) (int64, error)
	HumanTouchedPhrasesFunc    func(ctx context.Context, languageID int64) (int64, error)
	HumanTouchedRecordingsFunc func(ctx context.Context, languageID int64) (int64, error)
	OpenIssuesFunc             func(ctx context.Context, languageID int64) (int64, error)
	RecordingsByQualityFunc    func(ctx context.Context, languageID int64) (map[domain.Quality]int64, error)
	PhrasesByStatusFunc        func(ctx context.Context, languageID int64) (map[domain.PhraseStatus]int64, error)
	PhrasesByLengthFunc        func(ctx context.Context, languageID int64) (map[string]int64, error)

	calls struct {
		PhraseTotals []struct {
			Ctx        context.Context
			LanguageID int64
		}
		DistinctWords []struct {
			Ctx        context.Context
			LanguageID int64
		}
		TotalRecordings []struct {
			Ctx        context.Context
			LanguageID int64
		}
		HumanTouchedPhrases []struct {
			Ctx        context.Context
			LanguageID int64
		}
		HumanTouchedRecordings []struct {
			Ctx        context.Context
			LanguageID int64
		}
		OpenIssues []struct {
			Ctx        context.Context
			LanguageID int64
		}
		RecordingsByQuality []struct {
			Ctx        context.Context
			LanguageID int64
		}
		PhrasesByStatus []struct {
			Ctx        context.Context
			LanguageID int64
		}
		PhrasesByLength []struct {
			Ctx        context.Context
			LanguageID int64
		}
	}
	lockPhraseTotals           sync.RWMutex
	lockDistinctWords          sync.RWMutex
	lockTotalRecordings        sync.RWMutex
	lockHumanTouchedPhrases    sync.RWMutex
	lockHumanTouchedRecordings sync.RWMutex
	lockOpenIssues             sync.RWMutex
	lockRecordingsByQuality    sync.RWMutex
	lockPhrasesByStatus        sync.RWMutex
	lockPhrasesByLength        sync.RWMutex
}

func (mock *statsRepoMock) PhraseTotals(ctx context.Context, languageID int64) (statsrepo.PhraseTotals, error) {
	if mock.PhraseTotalsFunc == nil {
		panic("statsRepoMock.PhraseTotalsFunc: method is nil but statsRepo.PhraseTotals was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		LanguageID int64
	}{Ctx: ctx, LanguageID: languageID}
	mock.lockPhraseTotals.Lock()
	mock.calls.PhraseTotals = append(mock.calls.PhraseTotals, callInfo)
	mock.lockPhraseTotals.Unlock()
	return mock.PhraseTotalsFunc(ctx, languageID)
}

func (mock *statsRepoMock) PhraseTotalsCalls() []struct {
	Ctx        context.Context
	LanguageID int64
} {
	mock.lockPhraseTotals.RLock()
	calls := mock.calls.PhraseTotals
	mock.lockPhraseTotals.RUnlock()
	return calls
}

func (mock *statsRepoMock) DistinctWords(ctx context.Context, languageID int64) (int64, error) {
	if mock.DistinctWordsFunc == nil {
		panic("statsRepoMock.DistinctWordsFunc: method is nil but statsRepo.DistinctWords was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		LanguageID int64
	}{Ctx: ctx, LanguageID: languageID}
	mock.lockDistinctWords.Lock()
	mock.calls.DistinctWords = append(mock.calls.DistinctWords, callInfo)
	mock.lockDistinctWords.Unlock()
	return mock.DistinctWordsFunc(ctx, languageID)
}

func (mock *statsRepoMock) DistinctWordsCalls() []struct {
	Ctx        context.Context
	LanguageID int64
} {
	mock.lockDistinctWords.RLock()
	calls := mock.calls.DistinctWords
	mock.lockDistinctWords.RUnlock()
	return calls
}

func (mock *statsRepoMock) TotalRecordings(ctx context.Context, languageID int64) (int64, error) {
	if mock.TotalRecordingsFunc == nil {
		panic("statsRepoMock.TotalRecordingsFunc: method is nil but statsRepo.TotalRecordings was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		LanguageID int64
	}{Ctx: ctx, LanguageID: languageID}
	mock.lockTotalRecordings.Lock()
	mock.calls.TotalRecordings = append(mock.calls.TotalRecordings, callInfo)
	mock.lockTotalRecordings.Unlock()
	return mock.TotalRecordingsFunc(ctx, languageID)
}

func (mock *statsRepoMock) TotalRecordingsCalls() []struct {
	Ctx        context.Context
	LanguageID int64
} {
	mock.lockTotalRecordings.RLock()
	calls := mock.calls.TotalRecordings
	mock.lockTotalRecordings.RUnlock()
	return calls
}

func (mock *statsRepoMock) HumanTouchedPhrases(ctx context.Context, languageID int64) (int64, error) {
	if mock.HumanTouchedPhrasesFunc == nil {
		panic("statsRepoMock.HumanTouchedPhrasesFunc: method is nil but statsRepo.HumanTouchedPhrases was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		LanguageID int64
	}{Ctx: ctx, LanguageID: languageID}
	mock.lockHumanTouchedPhrases.Lock()
	mock.calls.HumanTouchedPhrases = append(mock.calls.HumanTouchedPhrases, callInfo)
	mock.lockHumanTouchedPhrases.Unlock()
	return mock.HumanTouchedPhrasesFunc(ctx, languageID)
}

func (mock *statsRepoMock) HumanTouchedPhrasesCalls() []struct {
	Ctx        context.Context
	LanguageID int64
} {
	mock.lockHumanTouchedPhrases.RLock()
	calls := mock.calls.HumanTouchedPhrases
	mock.lockHumanTouchedPhrases.RUnlock()
	return calls
}

func (mock *statsRepoMock) HumanTouchedRecordings(ctx context.Context, languageID int64) (int64, error) {
	if mock.HumanTouchedRecordingsFunc == nil {
		panic("statsRepoMock.HumanTouchedRecordingsFunc: method is nil but statsRepo.HumanTouchedRecordings was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		LanguageID int64
	}{Ctx: ctx, LanguageID: languageID}
	mock.lockHumanTouchedRecordings.Lock()
	mock.calls.HumanTouchedRecordings = append(mock.calls.HumanTouchedRecordings, callInfo)
	mock.lockHumanTouchedRecordings.Unlock()
	return mock.HumanTouchedRecordingsFunc(ctx, languageID)
}

func (mock *statsRepoMock) HumanTouchedRecordingsCalls() []struct {
	Ctx        context.Context
	LanguageID int64
} {
	mock.lockHumanTouchedRecordings.RLock()
	calls := mock.calls.HumanTouchedRecordings
	mock.lockHumanTouchedRecordings.RUnlock()
	return calls
}

func (mock *statsRepoMock) OpenIssues(ctx context.Context, languageID int64) (int64, error) {
	if mock.OpenIssuesFunc == nil {
		panic("statsRepoMock.OpenIssuesFunc: method is nil but statsRepo.OpenIssues was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		LanguageID int64
	}{Ctx: ctx, LanguageID: languageID}
	mock.lockOpenIssues.Lock()
	mock.calls.OpenIssues = append(mock.calls.OpenIssues, callInfo)
	mock.lockOpenIssues.Unlock()
	return mock.OpenIssuesFunc(ctx, languageID)
}

func (mock *statsRepoMock) OpenIssuesCalls() []struct {
	Ctx        context.Context
	LanguageID int64
} {
	mock.lockOpenIssues.RLock()
	calls := mock.calls.OpenIssues
	mock.lockOpenIssues.RUnlock()
	return calls
}

func (mock *statsRepoMock) RecordingsByQuality(ctx context.Context, languageID int64) (map[domain.Quality]int64, error) {
	if mock.RecordingsByQualityFunc == nil {
		panic("statsRepoMock.RecordingsByQualityFunc: method is nil but statsRepo.RecordingsByQuality was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		LanguageID int64
	}{Ctx: ctx, LanguageID: languageID}
	mock.lockRecordingsByQuality.Lock()
	mock.calls.RecordingsByQuality = append(mock.calls.RecordingsByQuality, callInfo)
	mock.lockRecordingsByQuality.Unlock()
	return mock.RecordingsByQualityFunc(ctx, languageID)
}

func (mock *statsRepoMock) RecordingsByQualityCalls() []struct {
	Ctx        context.Context
	LanguageID int64
} {
	mock.lockRecordingsByQuality.RLock()
	calls := mock.calls.RecordingsByQuality
	mock.lockRecordingsByQuality.RUnlock()
	return calls
}

func (mock *statsRepoMock) PhrasesByStatus(ctx context.Context, languageID int64) (map[domain.PhraseStatus]int64, error) {
	if mock.PhrasesByStatusFunc == nil {
		panic("statsRepoMock.PhrasesByStatusFunc: method is nil but statsRepo.PhrasesByStatus was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		LanguageID int64
	}{Ctx: ctx, LanguageID: languageID}
	mock.lockPhrasesByStatus.Lock()
	mock.calls.PhrasesByStatus = append(mock.calls.PhrasesByStatus, callInfo)
	mock.lockPhrasesByStatus.Unlock()
	return mock.PhrasesByStatusFunc(ctx, languageID)
}

func (mock *statsRepoMock) PhrasesByStatusCalls() []struct {
	Ctx        context.Context
	LanguageID int64
} {
	mock.lockPhrasesByStatus.RLock()
	calls := mock.calls.PhrasesByStatus
	mock.lockPhrasesByStatus.RUnlock()
	return calls
}

func (mock *statsRepoMock) PhrasesByLength(ctx context.Context, languageID int64) (map[string]int64, error) {
	if mock.PhrasesByLengthFunc == nil {
		panic("statsRepoMock.PhrasesByLengthFunc: method is nil but statsRepo.PhrasesByLength was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		LanguageID int64
	}{Ctx: ctx, LanguageID: languageID}
	mock.lockPhrasesByLength.Lock()
	mock.calls.PhrasesByLength = append(mock.calls.PhrasesByLength, callInfo)
	mock.lockPhrasesByLength.Unlock()
	return mock.PhrasesByLengthFunc(ctx, languageID)
}

func (mock *statsRepoMock) PhrasesByLengthCalls() []struct {
	Ctx        context.Context
	LanguageID int64
} {
	mock.lockPhrasesByLength.RLock()
	calls := mock.calls.PhrasesByLength
	mock.lockPhrasesByLength.RUnlock()
	return calls
}
