package store

import (
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"mbeck/finance-analyzer/internal/models"
)

func TestSessionStoreRoundTrip(t *testing.T) {
	s := NewSessionStore()

	tx := models.NewTransaction()
	tx.Recipient = "Vermieter Meyer"
	tx.Amount = decimal.NewFromInt(-850)
	balance := decimal.NewFromInt(1200)

	s.Save("user-1", []models.Transaction{tx}, models.Metadata{Balance: &balance})

	got := s.Get("user-1")
	assert.Len(t, got, 1)
	assert.Equal(t, "Vermieter Meyer", got[0].Recipient)
	assert.True(t, s.Metadata("user-1").HasBalance())
}

func TestSessionStoreAbsentKey(t *testing.T) {
	s := NewSessionStore()
	assert.Empty(t, s.Get("nobody"))
	assert.False(t, s.Metadata("nobody").HasBalance())
}

func TestSessionStoreClear(t *testing.T) {
	s := NewSessionStore()
	s.Save("user-1", []models.Transaction{models.NewTransaction()}, models.Metadata{})

	s.Clear("user-1")
	assert.Empty(t, s.Get("user-1"))

	// Clearing an absent key is a no-op.
	s.Clear("user-1")
}

func TestSessionStoreConcurrentAccess(t *testing.T) {
	s := NewSessionStore()

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.Save("shared", []models.Transaction{models.NewTransaction()}, models.Metadata{})
			_ = s.Get("shared")
		}()
	}
	wg.Wait()

	assert.Len(t, s.Get("shared"), 1)
}
