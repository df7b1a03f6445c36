package merge

import (
	"context"
	"sync"

	"github.com/UAlbertaALTLab/recording-validation-interface-sub000/internal/domain"
)

var _ phraseRepo = &phraseRepoMock{}

type phraseRepoMock struct {
	GetByIDFunc            func(ctx context.Context, id int64) (*domain.Phrase, error)
	GetByIDsFunc           func(ctx context.Context, ids []int64) ([]*domain.Phrase, error)
	UpdateFunc             func(ctx context.Context, p *domain.Phrase) error
	SetSemanticClassesFunc func(ctx context.Context, phraseID int64, classes []string) error
	DeleteByIDsFunc        func(ctx context.Context, ids []int64) (int64, error)
	DuplicateGroupsFunc    func(ctx context.Context, languageID int64) ([][]int64, error)

	calls struct {
		GetByID []struct {
			Ctx context.Context
			ID  int64
		}
		GetByIDs []struct {
			Ctx context.Context
			IDs []int64
		}
		Update []struct {
			Ctx context.Context
			P   *domain.Phrase
		}
		SetSemanticClasses []struct {
			Ctx      context.Context
			PhraseID int64
			Classes  []string
		}
		DeleteByIDs []struct {
			Ctx context.Context
			IDs []int64
		}
		DuplicateGroups []struct {
			Ctx        context.Context
			LanguageID int64
		}
	}
	lockGetByID            sync.RWMutex
	lockGetByIDs           sync.RWMutex
	lockUpdate             sync.RWMutex
	lockSetSemanticClasses sync.RWMutex
	lockDeleteByIDs        sync.RWMutex
	lockDuplicateGroups    sync.RWMutex
}

func (mock *phraseRepoMock) GetByID(ctx context.Context, id int64) (*domain.Phrase, error) {
	if mock.GetByIDFunc == nil {
		panic("phraseRepoMock.GetByIDFunc: method is nil but phraseRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  int64
	}{Ctx: ctx, ID: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *phraseRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  int64
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *phraseRepoMock) GetByIDs(ctx context.Context, ids []int64) ([]*domain.Phrase, error) {
	if mock.GetByIDsFunc == nil {
		panic("phraseRepoMock.GetByIDsFunc: method is nil but phraseRepo.GetByIDs was just called")
	}
	callInfo := struct {
		Ctx context.Context
		IDs []int64
	}{Ctx: ctx, IDs: ids}
	mock.lockGetByIDs.Lock()
	mock.calls.GetByIDs = append(mock.calls.GetByIDs, callInfo)
	mock.lockGetByIDs.Unlock()
	return mock.GetByIDsFunc(ctx, ids)
}

func (mock *phraseRepoMock) GetByIDsCalls() []struct {
	Ctx context.Context
	IDs []int64
} {
	mock.lockGetByIDs.RLock()
	calls := mock.calls.GetByIDs
	mock.lockGetByIDs.RUnlock()
	return calls
}

func (mock *phraseRepoMock) Update(ctx context.Context, p *domain.Phrase) error {
	if mock.UpdateFunc == nil {
		panic("phraseRepoMock.UpdateFunc: method is nil but phraseRepo.Update was just called")
	}
	callInfo := struct {
		Ctx context.Context
		P   *domain.Phrase
	}{Ctx: ctx, P: p}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, p)
}

func (mock *phraseRepoMock) UpdateCalls() []struct {
	Ctx context.Context
	P   *domain.Phrase
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *phraseRepoMock) SetSemanticClasses(ctx context.Context, phraseID int64, classes []string) error {
	if mock.SetSemanticClassesFunc == nil {
		panic("phraseRepoMock.SetSemanticClassesFunc: method is nil but phraseRepo.SetSemanticClasses was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		PhraseID int64
		Classes  []string
	}{Ctx: ctx, PhraseID: phraseID, Classes: classes}
	mock.lockSetSemanticClasses.Lock()
	mock.calls.SetSemanticClasses = append(mock.calls.SetSemanticClasses, callInfo)
	mock.lockSetSemanticClasses.Unlock()
	return mock.SetSemanticClassesFunc(ctx, phraseID, classes)
}

func (mock *phraseRepoMock) SetSemanticClassesCalls() []struct {
	Ctx      context.Context
	PhraseID int64
	Classes  []string
} {
	mock.lockSetSemanticClasses.RLock()
	calls := mock.calls.SetSemanticClasses
	mock.lockSetSemanticClasses.RUnlock()
	return calls
}

func (mock *phraseRepoMock) DeleteByIDs(ctx context.Context, ids []int64) (int64, error) {
	if mock.DeleteByIDsFunc == nil {
		panic("phraseRepoMock.DeleteByIDsFunc: method is nil but phraseRepo.DeleteByIDs was just called")
	}
	callInfo := struct {
		Ctx context.Context
		IDs []int64
	}{Ctx: ctx, IDs: ids}
	mock.lockDeleteByIDs.Lock()
	mock.calls.DeleteByIDs = append(mock.calls.DeleteByIDs, callInfo)
	mock.lockDeleteByIDs.Unlock()
	return mock.DeleteByIDsFunc(ctx, ids)
}

func (mock *phraseRepoMock) DeleteByIDsCalls() []struct {
	Ctx context.Context
	IDs []int64
} {
	mock.lockDeleteByIDs.RLock()
	calls := mock.calls.DeleteByIDs
	mock.lockDeleteByIDs.RUnlock()
	return calls
}

func (mock *phraseRepoMock) DuplicateGroups(ctx context.Context, languageID int64) ([][]int64, error) {
	if mock.DuplicateGroupsFunc == nil {
		panic("phraseRepoMock.DuplicateGroupsFunc: method is nil but phraseRepo.DuplicateGroups was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		LanguageID int64
	}{Ctx: ctx, LanguageID: languageID}
	mock.lockDuplicateGroups.Lock()
	mock.calls.DuplicateGroups = append(mock.calls.DuplicateGroups, callInfo)
	mock.lockDuplicateGroups.Unlock()
	return mock.DuplicateGroupsFunc(ctx, languageID)
}

func (mock *phraseRepoMock) DuplicateGroupsCalls() []struct {
	Ctx        context.Context
	LanguageID int64
} {
	mock.lockDuplicateGroups.RLock()
	calls := mock.calls.DuplicateGroups
	mock.lockDuplicateGroups.RUnlock()
	return calls
}

var _ recordingRepo = &recordingRepoMock{}

type recordingRepoMock struct {
	ReparentPhraseFunc func(ctx context.Context, from []int64, to int64) ([]string, error)

	calls struct {
		ReparentPhrase []struct {
			Ctx  context.Context
			From []int64
			To   int64
		}
	}
	lockReparentPhrase sync.RWMutex
}

func (mock *recordingRepoMock) ReparentPhrase(ctx context.Context, from []int64, to int64) ([]string, error) {
	if mock.ReparentPhraseFunc == nil {
		panic("recordingRepoMock.ReparentPhraseFunc: method is nil but recordingRepo.ReparentPhrase was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		From []int64
		To   int64
	}{Ctx: ctx, From: from, To: to}
	mock.lockReparentPhrase.Lock()
	mock.calls.ReparentPhrase = append(mock.calls.ReparentPhrase, callInfo)
	mock.lockReparentPhrase.Unlock()
	return mock.ReparentPhraseFunc(ctx, from, to)
}

func (mock *recordingRepoMock) ReparentPhraseCalls() []struct {
	Ctx  context.Context
	From []int64
	To   int64
} {
	mock.lockReparentPhrase.RLock()
	calls := mock.calls.ReparentPhrase
	mock.lockReparentPhrase.RUnlock()
	return calls
}

var _ issueRepo = &issueRepoMock{}

type issueRepoMock struct {
	ReparentPhraseFunc func(ctx context.Context, from []int64, to int64) (int64, error)

	calls struct {
		ReparentPhrase []struct {
			Ctx  context.Context
			From []int64
			To   int64
		}
	}
	lockReparentPhrase sync.RWMutex
}

func (mock *issueRepoMock) ReparentPhrase(ctx context.Context, from []int64, to int64) (int64, error) {
	if mock.ReparentPhraseFunc == nil {
		panic("issueRepoMock.ReparentPhraseFunc: method is nil but issueRepo.ReparentPhrase was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		From []int64
		To   int64
	}{Ctx: ctx, From: from, To: to}
	mock.lockReparentPhrase.Lock()
	mock.calls.ReparentPhrase = append(mock.calls.ReparentPhrase, callInfo)
	mock.lockReparentPhrase.Unlock()
	return mock.ReparentPhraseFunc(ctx, from, to)
}

func (mock *issueRepoMock) ReparentPhraseCalls() []struct {
	Ctx  context.Context
	From []int64
	To   int64
} {
	mock.lockReparentPhrase.RLock()
	calls := mock.calls.ReparentPhrase
	mock.lockReparentPhrase.RUnlock()
	return calls
}

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

var _ historyLogger = &historyLoggerMock{}

type historyLoggerMock struct {
	LogBatchFunc func(ctx context.Context, recs []domain.HistoryRecord) error

	calls struct {
		LogBatch []struct {
			Ctx  context.Context
			Recs []domain.HistoryRecord
		}
	}
	lockLogBatch sync.RWMutex
}

func (mock *historyLoggerMock) LogBatch(ctx context.Context, recs []domain.HistoryRecord) error {
	if mock.LogBatchFunc == nil {
		panic("historyLoggerMock.LogBatchFunc: method is nil but historyLogger.LogBatch was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Recs []domain.HistoryRecord
	}{Ctx: ctx, Recs: recs}
	mock.lockLogBatch.Lock()
	mock.calls.LogBatch = append(mock.calls.LogBatch, callInfo)
	mock.lockLogBatch.Unlock()
	return mock.LogBatchFunc(ctx, recs)
}

func (mock *historyLoggerMock) LogBatchCalls() []struct {
	Ctx  context.Context
	Recs []domain.HistoryRecord
} {
	mock.lockLogBatch.RLock()
	calls := mock.calls.LogBatch
	mock.lockLogBatch.RUnlock()
	return calls
}

var _ txManager = &txManagerMock{}

type txManagerMock struct {
	RunInTxSerializableFunc func(ctx context.Context, fn func(ctx context.Context) error) error

	calls struct {
		RunInTxSerializable []struct {
			Ctx context.Context
			Fn  func(ctx context.Context) error
		}
	}
	lockRunInTxSerializable sync.RWMutex
}

func (mock *txManagerMock) RunInTxSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	if mock.RunInTxSerializableFunc == nil {
		panic("txManagerMock.RunInTxSerializableFunc: method is nil but txManager.RunInTxSerializable was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Fn  func(ctx context.Context) error
	}{Ctx: ctx, Fn: fn}
	mock.lockRunInTxSerializable.Lock()
	mock.calls.RunInTxSerializable = append(mock.calls.RunInTxSerializable, callInfo)
	mock.lockRunInTxSerializable.Unlock()
	return mock.RunInTxSerializableFunc(ctx, fn)
}

func (mock *txManagerMock) RunInTxSerializableCalls() []struct {
	Ctx context.Context
	Fn  func(ctx context.Context) error
} {
	mock.lockRunInTxSerializable.RLock()
	calls := mock.calls.RunInTxSerializable
	mock.lockRunInTxSerializable.RUnlock()
	return calls
}
