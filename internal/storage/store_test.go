package storage_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-encounters/internal/storage"
	"github.com/KirkDiggler/rpg-encounters/internal/testutils"
)

// StoreContractSuite checks behaviour every backend must share
type StoreContractSuite struct {
	suite.Suite
	newStore func() storage.Store
	store    storage.Store
	ctx      context.Context
}

func (s *StoreContractSuite) SetupTest() {
	s.ctx = context.Background()
	s.store = s.newStore()
}

func (s *StoreContractSuite) TestReadBeforeWriteIsEmpty() {
	data, err := s.store.Read(s.ctx)
	s.Require().NoError(err)
	s.Empty(data)
}

func (s *StoreContractSuite) TestWriteThenRead() {
	s.Require().NoError(s.store.Write(s.ctx, []byte(`[{"name":"Goblin"}]`)))

	data, err := s.store.Read(s.ctx)
	s.Require().NoError(err)
	s.Equal(`[{"name":"Goblin"}]`, string(data))
}

func (s *StoreContractSuite) TestWriteReplaces() {
	s.Require().NoError(s.store.Write(s.ctx, []byte(`[{"name":"Goblin"},{"name":"Orc"}]`)))
	s.Require().NoError(s.store.Write(s.ctx, []byte(`[]`)))

	data, err := s.store.Read(s.ctx)
	s.Require().NoError(err)
	s.Equal(`[]`, string(data))
}

func TestFileStoreContract(t *testing.T) {
	suite.Run(t, &StoreContractSuite{newStore: func() storage.Store {
		store, err := storage.NewFileStore(&storage.FileConfig{
			Path: filepath.Join(t.TempDir(), "data", "monsters.json"),
		})
		require.NoError(t, err)
		return store
	}})
}

func TestRedisStoreContract(t *testing.T) {
	suite.Run(t, &StoreContractSuite{newStore: func() storage.Store {
		client, cleanup := testutils.CreateTestRedisClient(t)
		t.Cleanup(cleanup)
		store, err := storage.NewRedisStore(&storage.RedisConfig{Client: client})
		require.NoError(t, err)
		return store
	}})
}

func TestSQLiteStoreContract(t *testing.T) {
	suite.Run(t, &StoreContractSuite{newStore: func() storage.Store {
		ctx := context.Background()
		db, err := storage.OpenSQLite(ctx, filepath.Join(t.TempDir(), "catalog.db"))
		require.NoError(t, err)
		t.Cleanup(func() { _ = db.Close() })
		store, err := storage.NewSQLiteStore(ctx, &storage.SQLiteConfig{DB: db})
		require.NoError(t, err)
		return store
	}})
}

type FileStoreTestSuite struct {
	suite.Suite
	dir   string
	path  string
	store storage.Store
	ctx   context.Context
}

func TestFileStoreTestSuite(t *testing.T) {
	suite.Run(t, new(FileStoreTestSuite))
}

func (s *FileStoreTestSuite) SetupTest() {
	s.dir = s.T().TempDir()
	s.path = filepath.Join(s.dir, "monsters.json")
	s.ctx = context.Background()

	store, err := storage.NewFileStore(&storage.FileConfig{Path: s.path})
	s.Require().NoError(err)
	s.store = store
}

func (s *FileStoreTestSuite) TestWriteLeavesNoTempFiles() {
	s.Require().NoError(s.store.Write(s.ctx, []byte(`[]`)))
	s.Require().NoError(s.store.Write(s.ctx, []byte(`[{"name":"Orc"}]`)))

	entries, err := os.ReadDir(s.dir)
	s.Require().NoError(err)
	s.Require().Len(entries, 1)
	s.Equal("monsters.json", entries[0].Name())
}

func (s *FileStoreTestSuite) TestReadsOutOfBandChanges() {
	s.Require().NoError(os.WriteFile(s.path, []byte(`[{"name":"Kobold"}]`), 0o600))

	data, err := s.store.Read(s.ctx)
	s.Require().NoError(err)
	s.Equal(`[{"name":"Kobold"}]`, string(data))
}

func (s *FileStoreTestSuite) TestCanceledContext() {
	ctx, cancel := context.WithCancel(s.ctx)
	cancel()

	s.Error(s.store.Write(ctx, []byte(`[]`)))
	_, err := os.Stat(s.path)
	s.True(os.IsNotExist(err))
}

func (s *FileStoreTestSuite) TestRequiresPath() {
	_, err := storage.NewFileStore(&storage.FileConfig{})
	s.Error(err)
}

func TestNewStore_RequiresDependencies(t *testing.T) {
	_, err := storage.NewRedisStore(&storage.RedisConfig{})
	assert.Error(t, err)

	_, err = storage.NewSQLiteStore(context.Background(), &storage.SQLiteConfig{})
	assert.Error(t, err)

	_, err = storage.NewFileStore(nil)
	assert.Error(t, err)

	_, err = storage.OpenSQLite(context.Background(), "")
	assert.Error(t, err)
}
