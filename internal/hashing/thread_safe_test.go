package hashing

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/lgbarn/bitchess-go/internal/chess"
	"github.com/lgbarn/bitchess-go/internal/engine"
)

func TestThreadSafeDuplicateDetector_Concurrent(t *testing.T) {
	detector := NewThreadSafeDuplicateDetector(false, 0)
	board := boardFromFEN(t, engine.InitialFEN)

	const numBoards = 100
	const numWorkers = 10
	boardsPerWorker := numBoards / numWorkers

	boards := make([]*chess.Board, numBoards)
	for i := range boards {
		boards[i] = board.Copy()
	}

	var wg sync.WaitGroup
	for i := 0; i < numWorkers; i++ {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()
			start := workerID * boardsPerWorker
			end := start + boardsPerWorker
			for j := start; j < end; j++ {
				detector.CheckAndAdd(boards[j])
			}
		}(i)
	}
	wg.Wait()

	if detector.DuplicateCount() != 99 {
		t.Errorf("DuplicateCount() = %d; want 99", detector.DuplicateCount())
	}
	if detector.UniqueCount() != 1 {
		t.Errorf("UniqueCount() = %d; want 1", detector.UniqueCount())
	}
}

func TestThreadSafeDuplicateDetector_DifferentPositions(t *testing.T) {
	detector := NewThreadSafeDuplicateDetector(false, 0)

	fens := []string{
		engine.InitialFEN,
		"rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1",
		"rnbqkbnr/pppppppp/8/8/3P4/8/PPP1PPPP/RNBQKBNR b KQkq d3 0 1",
		"rnbqkbnr/pppppppp/8/8/8/5N2/PPPPPPPP/RNBQKB1R b KQkq - 1 1",
		"rnbqkbnr/pppppppp/8/8/2P5/8/PP1PPPPP/RNBQKBNR b KQkq c3 0 1",
	}

	boards := make([]*chess.Board, len(fens))
	for i, fen := range fens {
		boards[i] = boardFromFEN(t, fen)
	}

	var wg sync.WaitGroup
	for i := range boards {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			detector.CheckAndAdd(boards[idx])
		}(i)
	}
	wg.Wait()

	if detector.DuplicateCount() != 0 {
		t.Errorf("DuplicateCount() = %d; want 0", detector.DuplicateCount())
	}
	if detector.UniqueCount() != len(fens) {
		t.Errorf("UniqueCount() = %d; want %d", detector.UniqueCount(), len(fens))
	}
}

func TestThreadSafeDuplicateDetector_NoRace(t *testing.T) {
	detector := NewThreadSafeDuplicateDetector(false, 0)
	board := boardFromFEN(t, engine.InitialFEN)

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			detector.CheckAndAdd(board)
			_ = detector.DuplicateCount()
			_ = detector.UniqueCount()
			_ = detector.IsFull()
		}()
	}
	wg.Wait()
}

func TestThreadSafeDuplicateDetector_LoadFromDetector(t *testing.T) {
	regular := NewDuplicateDetector(false, 0)
	board := boardFromFEN(t, engine.InitialFEN)
	regular.CheckAndAdd(board)

	if regular.UniqueCount() != 1 {
		t.Errorf("regular UniqueCount() = %d; want 1", regular.UniqueCount())
	}

	threadSafe := NewThreadSafeDuplicateDetector(false, 0)
	threadSafe.LoadFromDetector(regular)

	if !threadSafe.CheckAndAdd(board) {
		t.Error("expected duplicate after loading from regular detector")
	}
	if threadSafe.DuplicateCount() != 1 {
		t.Errorf("DuplicateCount() = %d; want 1", threadSafe.DuplicateCount())
	}
	if regular.DuplicateCount() != 0 {
		t.Error("loading shares state with the source detector")
	}
}

func TestThreadSafeDuplicateDetector_MaxCapacity(t *testing.T) {
	const capacity = 50
	const numWorkers = 10
	const boardsPerWorker = 20

	detector := NewThreadSafeDuplicateDetector(false, capacity)
	uniqueAdded := int32(0)

	// Each worker walks a king along its own rank, with or without a rook,
	// giving well over capacity distinct positions.
	var wg sync.WaitGroup
	for i := 0; i < numWorkers; i++ {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()
			localUnique := 0
			for j := 0; j < boardsPerWorker; j++ {
				board := chess.NewBoard()
				board.Place(chess.BlackKing, chess.H8)
				board.Place(chess.WhiteKing, chess.NewSquare(j%8, workerID%6))
				if j >= 8 {
					board.Place(chess.WhiteRook, chess.NewSquare(j%8, 6))
				}
				if workerID >= 6 {
					board.Turn = chess.Black
				}
				board.UpdateRotated()
				if !detector.CheckAndAdd(board) {
					localUnique++
				}
			}
			atomic.AddInt32(&uniqueAdded, int32(localUnique))
		}(i)
	}
	wg.Wait()

	if !detector.IsFull() {
		t.Errorf("IsFull() = false after %d unique positions (capacity %d)", uniqueAdded, capacity)
	}
	if detector.UniqueCount() != capacity {
		t.Errorf("UniqueCount() = %d; want %d", detector.UniqueCount(), capacity)
	}
}
