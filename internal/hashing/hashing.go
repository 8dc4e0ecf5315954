// Package hashing provides position hashing and duplicate detection.
package hashing

import (
	"github.com/lgbarn/bitchess-go/internal/chess"
)

// DuplicateDetector tracks seen final positions.
type DuplicateDetector struct {
	// hashTable stores seen hash codes
	hashTable map[uint64][]PositionSignature
	// useExactMatch also requires the same ply count
	useExactMatch bool
	// duplicateCount tracks number of duplicates found
	duplicateCount int
	// maxCapacity bounds the number of stored signatures; 0 is unlimited
	maxCapacity int
	size        int
}

// PositionSignature stores identifying information about a position.
type PositionSignature struct {
	// Hash is the Zobrist hash of the position
	Hash uint64
	// PlyCount is the number of half-moves played to reach it
	PlyCount int
	// WeakHash is a fast hash for quick comparison
	WeakHash uint32
}

// NewDuplicateDetector creates a new duplicate detector.
// maxCapacity of 0 means unlimited capacity.
func NewDuplicateDetector(exactMatch bool, maxCapacity int) *DuplicateDetector {
	return &DuplicateDetector{
		hashTable:     make(map[uint64][]PositionSignature),
		useExactMatch: exactMatch,
		maxCapacity:   maxCapacity,
	}
}

// Signature computes the signature of the board's current position.
func Signature(board *chess.Board) PositionSignature {
	return PositionSignature{
		Hash:     GenerateZobristHash(board),
		PlyCount: board.Ply(),
		WeakHash: WeakHash(board),
	}
}

// CheckAndAdd checks if the board's position was seen before and records it.
// Returns true if the position is a duplicate. Once the detector is full,
// new positions are still checked but no longer recorded.
func (d *DuplicateDetector) CheckAndAdd(board *chess.Board) bool {
	if board == nil {
		return false
	}
	return d.checkAndAddSignature(Signature(board))
}

func (d *DuplicateDetector) checkAndAddSignature(sig PositionSignature) bool {
	for _, existing := range d.hashTable[sig.Hash] {
		if d.signaturesMatch(sig, existing) {
			d.duplicateCount++
			return true
		}
	}

	if d.IsFull() {
		return false
	}
	d.hashTable[sig.Hash] = append(d.hashTable[sig.Hash], sig)
	d.size++
	return false
}

// signaturesMatch checks if two position signatures match.
func (d *DuplicateDetector) signaturesMatch(a, b PositionSignature) bool {
	if a.Hash != b.Hash || a.WeakHash != b.WeakHash {
		return false
	}
	if d.useExactMatch && a.PlyCount != b.PlyCount {
		return false
	}
	return true
}

// DuplicateCount returns the number of duplicates detected.
func (d *DuplicateDetector) DuplicateCount() int {
	return d.duplicateCount
}

// UniqueCount returns the number of unique positions stored.
func (d *DuplicateDetector) UniqueCount() int {
	return d.size
}

// IsFull reports whether the capacity limit has been reached.
func (d *DuplicateDetector) IsFull() bool {
	return d.maxCapacity > 0 && d.size >= d.maxCapacity
}

// Reset clears the hash table.
func (d *DuplicateDetector) Reset() {
	d.hashTable = make(map[uint64][]PositionSignature)
	d.duplicateCount = 0
	d.size = 0
}
