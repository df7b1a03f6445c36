package lookup

import (
	"context"
	"sync"

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

var _ recordingFinder = &recordingFinderMock{}

type recordingFinderMock struct {
	FindExactFunc   func(ctx context.Context, languageID int64, transcription string) ([]domain.MatchedRecording, error)
	FindPatternFunc func(ctx context.Context, languageID int64, pattern string) ([]domain.MatchedRecording, error)
	FindByFuzzyFunc func(ctx context.Context, forms []string) ([]domain.MatchedRecording, error)

	calls struct {
		FindExact []struct {
			Ctx           context.Context
			LanguageID    int64
			Transcription string
		}
		FindPattern []struct {
			Ctx        context.Context
			LanguageID int64
			Pattern    string
		}
		FindByFuzzy []struct {
			Ctx   context.Context
			Forms []string
		}
	}
	lockFindExact   sync.RWMutex
	lockFindPattern sync.RWMutex
	lockFindByFuzzy sync.RWMutex
}

func (mock *recordingFinderMock) FindExact(ctx context.Context, languageID int64, transcription string) ([]domain.MatchedRecording, error) {
	if mock.FindExactFunc == nil {
		panic("recordingFinderMock.FindExactFunc: method is nil but recordingFinder.FindExact was just called")
	}
	callInfo := struct {
		Ctx           context.Context
		LanguageID    int64
		Transcription string
	}{Ctx: ctx, LanguageID: languageID, Transcription: transcription}
	mock.lockFindExact.Lock()
	mock.calls.FindExact = append(mock.calls.FindExact, callInfo)
	mock.lockFindExact.Unlock()
	return mock.FindExactFunc(ctx, languageID, transcription)
}

func (mock *recordingFinderMock) FindExactCalls() []struct {
	Ctx           context.Context
	LanguageID    int64
	Transcription string
} {
	mock.lockFindExact.RLock()
	calls := mock.calls.FindExact
	mock.lockFindExact.RUnlock()
	return calls
}

func (mock *recordingFinderMock) FindPattern(ctx context.Context, languageID int64, pattern string) ([]domain.MatchedRecording, error) {
	if mock.FindPatternFunc == nil {
		panic("recordingFinderMock.FindPatternFunc: method is nil but recordingFinder.FindPattern was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		LanguageID int64
		Pattern    string
	}{Ctx: ctx, LanguageID: languageID, Pattern: pattern}
	mock.lockFindPattern.Lock()
	mock.calls.FindPattern = append(mock.calls.FindPattern, callInfo)
	mock.lockFindPattern.Unlock()
	return mock.FindPatternFunc(ctx, languageID, pattern)
}

func (mock *recordingFinderMock) FindPatternCalls() []struct {
	Ctx        context.Context
	LanguageID int64
	Pattern    string
} {
	mock.lockFindPattern.RLock()
	calls := mock.calls.FindPattern
	mock.lockFindPattern.RUnlock()
	return calls
}

func (mock *recordingFinderMock) FindByFuzzy(ctx context.Context, forms []string) ([]domain.MatchedRecording, error) {
	if mock.FindByFuzzyFunc == nil {
		panic("recordingFinderMock.FindByFuzzyFunc: method is nil but recordingFinder.FindByFuzzy was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Forms []string
	}{Ctx: ctx, Forms: forms}
	mock.lockFindByFuzzy.Lock()
	mock.calls.FindByFuzzy = append(mock.calls.FindByFuzzy, callInfo)
	mock.lockFindByFuzzy.Unlock()
	return mock.FindByFuzzyFunc(ctx, forms)
}

func (mock *recordingFinderMock) FindByFuzzyCalls() []struct {
	Ctx   context.Context
	Forms []string
} {
	mock.lockFindByFuzzy.RLock()
	calls := mock.calls.FindByFuzzy
	mock.lockFindByFuzzy.RUnlock()
	return calls
}

var _ speakerRepo = &speakerRepoMock{}

type speakerRepoMock struct {
	GetByCodesFunc func(ctx context.Context, codes []string) ([]domain.Speaker, error)

	calls struct {
		GetByCodes []struct {
			Ctx   context.Context
			Codes []string
		}
	}
	lockGetByCodes sync.RWMutex
}

func (mock *speakerRepoMock) GetByCodes(ctx context.Context, codes []string) ([]domain.Speaker, error) {
	if mock.GetByCodesFunc == nil {
		panic("speakerRepoMock.GetByCodesFunc: method is nil but speakerRepo.GetByCodes was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Codes []string
	}{Ctx: ctx, Codes: codes}
	mock.lockGetByCodes.Lock()
	mock.calls.GetByCodes = append(mock.calls.GetByCodes, callInfo)
	mock.lockGetByCodes.Unlock()
	return mock.GetByCodesFunc(ctx, codes)
}

func (mock *speakerRepoMock) GetByCodesCalls() []struct {
	Ctx   context.Context
	Codes []string
} {
	mock.lockGetByCodes.RLock()
	calls := mock.calls.GetByCodes
	mock.lockGetByCodes.RUnlock()
	return calls
}

var _ phraseRepo = &phraseRepoMock{}

type phraseRepoMock struct {
	ListTranscriptionsFunc func(ctx context.Context, languageID int64) ([]string, error)

	calls struct {
		ListTranscriptions []struct {
			Ctx        context.Context
			LanguageID int64
		}
	}
	lockListTranscriptions sync.RWMutex
}

func (mock *phraseRepoMock) ListTranscriptions(ctx context.Context, languageID int64) ([]string, error) {
	if mock.ListTranscriptionsFunc == nil {
		panic("phraseRepoMock.ListTranscriptionsFunc: method is nil but phraseRepo.ListTranscriptions was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		LanguageID int64
	}{Ctx: ctx, LanguageID: languageID}
	mock.lockListTranscriptions.Lock()
	mock.calls.ListTranscriptions = append(mock.calls.ListTranscriptions, callInfo)
	mock.lockListTranscriptions.Unlock()
	return mock.ListTranscriptionsFunc(ctx, languageID)
}

func (mock *phraseRepoMock) ListTranscriptionsCalls() []struct {
	Ctx        context.Context
	LanguageID int64
} {
	mock.lockListTranscriptions.RLock()
	calls := mock.calls.ListTranscriptions
	mock.lockListTranscriptions.RUnlock()
	return calls
}
