package hashing

import (
	"sync"

	"github.com/lgbarn/bitchess-go/internal/chess"
)

// ThreadSafeDuplicateDetector wraps DuplicateDetector with mutex protection for concurrent access.
type ThreadSafeDuplicateDetector struct {
	detector *DuplicateDetector
	mu       sync.RWMutex
}

// NewThreadSafeDuplicateDetector creates a new thread-safe detector.
// maxCapacity of 0 means unlimited capacity.
func NewThreadSafeDuplicateDetector(exactMatch bool, maxCapacity int) *ThreadSafeDuplicateDetector {
	return &ThreadSafeDuplicateDetector{
		detector: NewDuplicateDetector(exactMatch, maxCapacity),
	}
}

// CheckAndAdd atomically checks if the position is a duplicate and records it.
// The signature is computed before taking the lock.
func (d *ThreadSafeDuplicateDetector) CheckAndAdd(board *chess.Board) bool {
	if board == nil {
		return false
	}
	sig := Signature(board)
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.detector.checkAndAddSignature(sig)
}

// DuplicateCount returns the number of duplicates detected.
func (d *ThreadSafeDuplicateDetector) DuplicateCount() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.detector.DuplicateCount()
}

// UniqueCount returns the number of unique positions.
func (d *ThreadSafeDuplicateDetector) UniqueCount() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.detector.UniqueCount()
}

// IsFull returns true if the detector has reached its capacity limit.
func (d *ThreadSafeDuplicateDetector) IsFull() bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.detector.IsFull()
}

// LoadFromDetector replaces the contents with a copy of a regular detector's,
// e.g. one seeded from a known set of positions.
func (d *ThreadSafeDuplicateDetector) LoadFromDetector(src *DuplicateDetector) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.detector.Reset()
	for hash, sigs := range src.hashTable {
		d.detector.hashTable[hash] = append([]PositionSignature(nil), sigs...)
		d.detector.size += len(sigs)
	}
	d.detector.duplicateCount = src.duplicateCount
}
