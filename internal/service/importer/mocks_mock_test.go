package importer

import (
	"context"
	"iter"
	"sync"

	"github.com/UAlbertaALTLab/recording-validation-interface-sub000/internal/audio"
	"github.com/UAlbertaALTLab/recording-validation-interface-sub000/internal/domain"
	"github.com/UAlbertaALTLab/recording-validation-interface-sub000/internal/elan"
	"github.com/UAlbertaALTLab/recording-validation-interface-sub000/internal/transcode"
)

var _ scanner = &scannerMock{}

type scannerMock struct {
	ScanFunc func(ctx context.Context, root string) iter.Seq2[*elan.Segment, error]

	calls struct {
		Scan []struct {
			Ctx  context.Context
			Root string
		}
	}
	lockScan sync.RWMutex
}

func (mock *scannerMock) Scan(ctx context.Context, root string) iter.Seq2[*elan.Segment, error] {
	if mock.ScanFunc == nil {
		panic("scannerMock.ScanFunc: method is nil but scanner.Scan was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Root string
	}{Ctx: ctx, Root: root}
	mock.lockScan.Lock()
	mock.calls.Scan = append(mock.calls.Scan, callInfo)
	mock.lockScan.Unlock()
	return mock.ScanFunc(ctx, root)
}

func (mock *scannerMock) ScanCalls() []struct {
	Ctx  context.Context
	Root string
} {
	mock.lockScan.RLock()
	calls := mock.calls.Scan
	mock.lockScan.RUnlock()
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

var _ speakerRepo = &speakerRepoMock{}

type speakerRepoMock struct {
	EnsureFunc      func(ctx context.Context, code string) error
	AddLanguageFunc func(ctx context.Context, code string, languageID int64) error

	calls struct {
		Ensure []struct {
			Ctx  context.Context
			Code string
		}
		AddLanguage []struct {
			Ctx        context.Context
			Code       string
			LanguageID int64
		}
	}
	lockEnsure      sync.RWMutex
	lockAddLanguage sync.RWMutex
}

func (mock *speakerRepoMock) Ensure(ctx context.Context, code string) error {
	if mock.EnsureFunc == nil {
		panic("speakerRepoMock.EnsureFunc: method is nil but speakerRepo.Ensure was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Code string
	}{Ctx: ctx, Code: code}
	mock.lockEnsure.Lock()
	mock.calls.Ensure = append(mock.calls.Ensure, callInfo)
	mock.lockEnsure.Unlock()
	return mock.EnsureFunc(ctx, code)
}

func (mock *speakerRepoMock) EnsureCalls() []struct {
	Ctx  context.Context
	Code string
} {
	mock.lockEnsure.RLock()
	calls := mock.calls.Ensure
	mock.lockEnsure.RUnlock()
	return calls
}

func (mock *speakerRepoMock) AddLanguage(ctx context.Context, code string, languageID int64) error {
	if mock.AddLanguageFunc == nil {
		panic("speakerRepoMock.AddLanguageFunc: method is nil but speakerRepo.AddLanguage was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		Code       string
		LanguageID int64
	}{Ctx: ctx, Code: code, LanguageID: languageID}
	mock.lockAddLanguage.Lock()
	mock.calls.AddLanguage = append(mock.calls.AddLanguage, callInfo)
	mock.lockAddLanguage.Unlock()
	return mock.AddLanguageFunc(ctx, code, languageID)
}

func (mock *speakerRepoMock) AddLanguageCalls() []struct {
	Ctx        context.Context
	Code       string
	LanguageID int64
} {
	mock.lockAddLanguage.RLock()
	calls := mock.calls.AddLanguage
	mock.lockAddLanguage.RUnlock()
	return calls
}

var _ sessionRepo = &sessionRepoMock{}

type sessionRepoMock struct {
	GetFunc     func(ctx context.Context, id domain.SessionID) (*domain.RecordingSession, error)
	EnsureFunc  func(ctx context.Context, id domain.SessionID, hash string) (bool, error)
	SetHashFunc func(ctx context.Context, id domain.SessionID, hash string) error

	calls struct {
		Get []struct {
			Ctx context.Context
			ID  domain.SessionID
		}
		Ensure []struct {
			Ctx  context.Context
			ID   domain.SessionID
			Hash string
		}
		SetHash []struct {
			Ctx  context.Context
			ID   domain.SessionID
			Hash string
		}
	}
	lockGet     sync.RWMutex
	lockEnsure  sync.RWMutex
	lockSetHash sync.RWMutex
}

func (mock *sessionRepoMock) Get(ctx context.Context, id domain.SessionID) (*domain.RecordingSession, error) {
	if mock.GetFunc == nil {
		panic("sessionRepoMock.GetFunc: method is nil but sessionRepo.Get was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  domain.SessionID
	}{Ctx: ctx, ID: id}
	mock.lockGet.Lock()
	mock.calls.Get = append(mock.calls.Get, callInfo)
	mock.lockGet.Unlock()
	return mock.GetFunc(ctx, id)
}

func (mock *sessionRepoMock) GetCalls() []struct {
	Ctx context.Context
	ID  domain.SessionID
} {
	mock.lockGet.RLock()
	calls := mock.calls.Get
	mock.lockGet.RUnlock()
	return calls
}

func (mock *sessionRepoMock) Ensure(ctx context.Context, id domain.SessionID, hash string) (bool, error) {
	if mock.EnsureFunc == nil {
		panic("sessionRepoMock.EnsureFunc: method is nil but sessionRepo.Ensure was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		ID   domain.SessionID
		Hash string
	}{Ctx: ctx, ID: id, Hash: hash}
	mock.lockEnsure.Lock()
	mock.calls.Ensure = append(mock.calls.Ensure, callInfo)
	mock.lockEnsure.Unlock()
	return mock.EnsureFunc(ctx, id, hash)
}

func (mock *sessionRepoMock) EnsureCalls() []struct {
	Ctx  context.Context
	ID   domain.SessionID
	Hash string
} {
	mock.lockEnsure.RLock()
	calls := mock.calls.Ensure
	mock.lockEnsure.RUnlock()
	return calls
}

func (mock *sessionRepoMock) SetHash(ctx context.Context, id domain.SessionID, hash string) error {
	if mock.SetHashFunc == nil {
		panic("sessionRepoMock.SetHashFunc: method is nil but sessionRepo.SetHash was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		ID   domain.SessionID
		Hash string
	}{Ctx: ctx, ID: id, Hash: hash}
	mock.lockSetHash.Lock()
	mock.calls.SetHash = append(mock.calls.SetHash, callInfo)
	mock.lockSetHash.Unlock()
	return mock.SetHashFunc(ctx, id, hash)
}

func (mock *sessionRepoMock) SetHashCalls() []struct {
	Ctx  context.Context
	ID   domain.SessionID
	Hash string
} {
	mock.lockSetHash.RLock()
	calls := mock.calls.SetHash
	mock.lockSetHash.RUnlock()
	return calls
}

var _ phraseRepo = &phraseRepoMock{}

type phraseRepoMock struct {
	FindByKeyFunc func(ctx context.Context, key domain.PhraseKey) (*domain.Phrase, error)
	CreateFunc    func(ctx context.Context, p *domain.Phrase) error

	calls struct {
		FindByKey []struct {
			Ctx context.Context
			Key domain.PhraseKey
		}
		Create []struct {
			Ctx context.Context
			P   *domain.Phrase
		}
	}
	lockFindByKey sync.RWMutex
	lockCreate    sync.RWMutex
}

func (mock *phraseRepoMock) FindByKey(ctx context.Context, key domain.PhraseKey) (*domain.Phrase, error) {
	if mock.FindByKeyFunc == nil {
		panic("phraseRepoMock.FindByKeyFunc: method is nil but phraseRepo.FindByKey was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Key domain.PhraseKey
	}{Ctx: ctx, Key: key}
	mock.lockFindByKey.Lock()
	mock.calls.FindByKey = append(mock.calls.FindByKey, callInfo)
	mock.lockFindByKey.Unlock()
	return mock.FindByKeyFunc(ctx, key)
}

func (mock *phraseRepoMock) FindByKeyCalls() []struct {
	Ctx context.Context
	Key domain.PhraseKey
} {
	mock.lockFindByKey.RLock()
	calls := mock.calls.FindByKey
	mock.lockFindByKey.RUnlock()
	return calls
}

func (mock *phraseRepoMock) Create(ctx context.Context, p *domain.Phrase) error {
	if mock.CreateFunc == nil {
		panic("phraseRepoMock.CreateFunc: method is nil but phraseRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		P   *domain.Phrase
	}{Ctx: ctx, P: p}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, p)
}

func (mock *phraseRepoMock) CreateCalls() []struct {
	Ctx context.Context
	P   *domain.Phrase
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

var _ recordingRepo = &recordingRepoMock{}

type recordingRepoMock struct {
	GetFunc            func(ctx context.Context, id string) (*domain.Recording, error)
	CreateFunc         func(ctx context.Context, rec *domain.Recording) error
	UpdateImportedFunc func(ctx context.Context, rec *domain.Recording) error

	calls struct {
		Get []struct {
			Ctx context.Context
			ID  string
		}
		Create []struct {
			Ctx context.Context
			Rec *domain.Recording
		}
		UpdateImported []struct {
			Ctx context.Context
			Rec *domain.Recording
		}
	}
	lockGet            sync.RWMutex
	lockCreate         sync.RWMutex
	lockUpdateImported sync.RWMutex
}

func (mock *recordingRepoMock) Get(ctx context.Context, id string) (*domain.Recording, error) {
	if mock.GetFunc == nil {
		panic("recordingRepoMock.GetFunc: method is nil but recordingRepo.Get was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  string
	}{Ctx: ctx, ID: id}
	mock.lockGet.Lock()
	mock.calls.Get = append(mock.calls.Get, callInfo)
	mock.lockGet.Unlock()
	return mock.GetFunc(ctx, id)
}

func (mock *recordingRepoMock) GetCalls() []struct {
	Ctx context.Context
	ID  string
} {
	mock.lockGet.RLock()
	calls := mock.calls.Get
	mock.lockGet.RUnlock()
	return calls
}

func (mock *recordingRepoMock) Create(ctx context.Context, rec *domain.Recording) error {
	if mock.CreateFunc == nil {
		panic("recordingRepoMock.CreateFunc: method is nil but recordingRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Rec *domain.Recording
	}{Ctx: ctx, Rec: rec}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, rec)
}

func (mock *recordingRepoMock) CreateCalls() []struct {
	Ctx context.Context
	Rec *domain.Recording
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *recordingRepoMock) UpdateImported(ctx context.Context, rec *domain.Recording) error {
	if mock.UpdateImportedFunc == nil {
		panic("recordingRepoMock.UpdateImportedFunc: method is nil but recordingRepo.UpdateImported was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Rec *domain.Recording
	}{Ctx: ctx, Rec: rec}
	mock.lockUpdateImported.Lock()
	mock.calls.UpdateImported = append(mock.calls.UpdateImported, callInfo)
	mock.lockUpdateImported.Unlock()
	return mock.UpdateImportedFunc(ctx, rec)
}

func (mock *recordingRepoMock) UpdateImportedCalls() []struct {
	Ctx context.Context
	Rec *domain.Recording
} {
	mock.lockUpdateImported.RLock()
	calls := mock.calls.UpdateImported
	mock.lockUpdateImported.RUnlock()
	return calls
}

var _ transcriptionFileRepo = &transcriptionFileRepoMock{}

type transcriptionFileRepoMock struct {
	GetFunc    func(ctx context.Context, path string) (*domain.TranscriptionFile, error)
	UpsertFunc func(ctx context.Context, path string, hash string) error

	calls struct {
		Get []struct {
			Ctx  context.Context
			Path string
		}
		Upsert []struct {
			Ctx  context.Context
			Path string
			Hash string
		}
	}
	lockGet    sync.RWMutex
	lockUpsert sync.RWMutex
}

func (mock *transcriptionFileRepoMock) Get(ctx context.Context, path string) (*domain.TranscriptionFile, error) {
	if mock.GetFunc == nil {
		panic("transcriptionFileRepoMock.GetFunc: method is nil but transcriptionFileRepo.Get was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Path string
	}{Ctx: ctx, Path: path}
	mock.lockGet.Lock()
	mock.calls.Get = append(mock.calls.Get, callInfo)
	mock.lockGet.Unlock()
	return mock.GetFunc(ctx, path)
}

func (mock *transcriptionFileRepoMock) GetCalls() []struct {
	Ctx  context.Context
	Path string
} {
	mock.lockGet.RLock()
	calls := mock.calls.Get
	mock.lockGet.RUnlock()
	return calls
}

func (mock *transcriptionFileRepoMock) Upsert(ctx context.Context, path string, hash string) error {
	if mock.UpsertFunc == nil {
		panic("transcriptionFileRepoMock.UpsertFunc: method is nil but transcriptionFileRepo.Upsert was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Path string
		Hash string
	}{Ctx: ctx, Path: path, Hash: hash}
	mock.lockUpsert.Lock()
	mock.calls.Upsert = append(mock.calls.Upsert, callInfo)
	mock.lockUpsert.Unlock()
	return mock.UpsertFunc(ctx, path, hash)
}

func (mock *transcriptionFileRepoMock) UpsertCalls() []struct {
	Ctx  context.Context
	Path string
	Hash string
} {
	mock.lockUpsert.RLock()
	calls := mock.calls.Upsert
	mock.lockUpsert.RUnlock()
	return calls
}

var _ historyLogger = &historyLoggerMock{}

type historyLoggerMock struct {
	LogFunc func(ctx context.Context, rec domain.HistoryRecord) error

	calls struct {
		Log []struct {
			Ctx context.Context
			Rec domain.HistoryRecord
		}
	}
	lockLog sync.RWMutex
}

func (mock *historyLoggerMock) Log(ctx context.Context, rec domain.HistoryRecord) error {
	if mock.LogFunc == nil {
		panic("historyLoggerMock.LogFunc: method is nil but historyLogger.Log was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Rec domain.HistoryRecord
	}{Ctx: ctx, Rec: rec}
	mock.lockLog.Lock()
	mock.calls.Log = append(mock.calls.Log, callInfo)
	mock.lockLog.Unlock()
	return mock.LogFunc(ctx, rec)
}

func (mock *historyLoggerMock) LogCalls() []struct {
	Ctx context.Context
	Rec domain.HistoryRecord
} {
	mock.lockLog.RLock()
	calls := mock.calls.Log
	mock.lockLog.RUnlock()
	return calls
}

var _ transcoder = &transcoderMock{}

type transcoderMock struct {
	TranscodeFunc func(ctx context.Context, pcm *audio.PCM, tags transcode.Tags) ([]byte, error)

	calls struct {
		Transcode []struct {
			Ctx  context.Context
			Pcm  *audio.PCM
			Tags transcode.Tags
		}
	}
	lockTranscode sync.RWMutex
}

func (mock *transcoderMock) Transcode(ctx context.Context, pcm *audio.PCM, tags transcode.Tags) ([]byte, error) {
	if mock.TranscodeFunc == nil {
		panic("transcoderMock.TranscodeFunc: method is nil but transcoder.Transcode was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Pcm  *audio.PCM
		Tags transcode.Tags
	}{Ctx: ctx, Pcm: pcm, Tags: tags}
	mock.lockTranscode.Lock()
	mock.calls.Transcode = append(mock.calls.Transcode, callInfo)
	mock.lockTranscode.Unlock()
	return mock.TranscodeFunc(ctx, pcm, tags)
}

func (mock *transcoderMock) TranscodeCalls() []struct {
	Ctx  context.Context
	Pcm  *audio.PCM
	Tags transcode.Tags
} {
	mock.lockTranscode.RLock()
	calls := mock.calls.Transcode
	mock.lockTranscode.RUnlock()
	return calls
}

var _ blobStore = &blobStoreMock{}

type blobStoreMock struct {
	ExistsFunc func(key string) bool
	PutFunc    func(ctx context.Context, key string, data []byte) (string, error)

	calls struct {
		Exists []struct {
			Key string
		}
		Put []struct {
			Ctx  context.Context
			Key  string
			Data []byte
		}
	}
	lockExists sync.RWMutex
	lockPut    sync.RWMutex
}

func (mock *blobStoreMock) Exists(key string) bool {
	if mock.ExistsFunc == nil {
		panic("blobStoreMock.ExistsFunc: method is nil but blobStore.Exists was just called")
	}
	callInfo := struct {
		Key string
	}{Key: key}
	mock.lockExists.Lock()
	mock.calls.Exists = append(mock.calls.Exists, callInfo)
	mock.lockExists.Unlock()
	return mock.ExistsFunc(key)
}

func (mock *blobStoreMock) ExistsCalls() []struct {
	Key string
} {
	mock.lockExists.RLock()
	calls := mock.calls.Exists
	mock.lockExists.RUnlock()
	return calls
}

func (mock *blobStoreMock) Put(ctx context.Context, key string, data []byte) (string, error) {
	if mock.PutFunc == nil {
		panic("blobStoreMock.PutFunc: method is nil but blobStore.Put was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Key  string
		Data []byte
	}{Ctx: ctx, Key: key, Data: data}
	mock.lockPut.Lock()
	mock.calls.Put = append(mock.calls.Put, callInfo)
	mock.lockPut.Unlock()
	return mock.PutFunc(ctx, key, data)
}

func (mock *blobStoreMock) PutCalls() []struct {
	Ctx  context.Context
	Key  string
	Data []byte
} {
	mock.lockPut.RLock()
	calls := mock.calls.Put
	mock.lockPut.RUnlock()
	return calls
}

var _ txManager = &txManagerMock{}

type txManagerMock struct {
	RunInTxFunc func(ctx context.Context, fn func(ctx context.Context) error) error

	calls struct {
		RunInTx []struct {
			Ctx context.Context
			Fn  func(ctx context.Context) error
		}
	}
	lockRunInTx sync.RWMutex
}

func (mock *txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if mock.RunInTxFunc == nil {
		panic("txManagerMock.RunInTxFunc: method is nil but txManager.RunInTx was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Fn  func(ctx context.Context) error
	}{Ctx: ctx, Fn: fn}
	mock.lockRunInTx.Lock()
	mock.calls.RunInTx = append(mock.calls.RunInTx, callInfo)
	mock.lockRunInTx.Unlock()
	return mock.RunInTxFunc(ctx, fn)
}

func (mock *txManagerMock) RunInTxCalls() []struct {
	Ctx context.Context
	Fn  func(ctx context.Context) error
} {
	mock.lockRunInTx.RLock()
	calls := mock.calls.RunInTx
	mock.lockRunInTx.RUnlock()
	return calls
}
