package bundlefile

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"
)

func TestFileLock_LockUnlock(t *testing.T) {
	tmpDir := t.TempDir()
	lockPath := filepath.Join(tmpDir, "roots.pem")

	lock := NewFileLock(lockPath)

	ctx := context.Background()
	if err := lock.Lock(ctx); err != nil {
		t.Fatalf("Lock() failed: %v", err)
	}

	// Verify lock file was created
	lockFile := lockPath + ".lock"
	if _, err := os.Stat(lockFile); os.IsNotExist(err) {
		t.Error("Lock file was not created")
	}

	if err := lock.Unlock(); err != nil {
		t.Fatalf("Unlock() failed: %v", err)
	}
}

func TestFileLock_ContextTimeout(t *testing.T) {
	tmpDir := t.TempDir()
	lockPath := filepath.Join(tmpDir, "roots.pem")

	lock1 := NewFileLock(lockPath)
	lock2 := NewFileLock(lockPath)

	if err := lock1.Lock(context.Background()); err != nil {
		t.Fatalf("First Lock() failed: %v", err)
	}
	defer lock1.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), 300*time.Millisecond)
	defer cancel()

	start := time.Now()
	err := lock2.Lock(ctx)
	elapsed := time.Since(start)

	if err == nil {
		t.Error("Second Lock() should have failed due to timeout")
		lock2.Unlock()
	}

	// Should have timed out around 300ms
	if elapsed < 200*time.Millisecond {
		t.Errorf("Lock timeout was too quick: %v", elapsed)
	}
	if elapsed > 600*time.Millisecond {
		t.Errorf("Lock timeout was too slow: %v", elapsed)
	}
}

func TestFileLock_Sequential(t *testing.T) {
	tmpDir := t.TempDir()
	lockPath := filepath.Join(tmpDir, "roots.pem")

	const numGoroutines = 8

	var wg sync.WaitGroup
	var mu sync.Mutex
	held := false

	for i := 0; i < numGoroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			lock := NewFileLock(lockPath)
			if err := lock.Lock(context.Background()); err != nil {
				t.Errorf("Lock() failed: %v", err)
				return
			}
			defer lock.Unlock()

			mu.Lock()
			if held {
				t.Error("two goroutines held the lock at once")
			}
			held = true
			mu.Unlock()

			time.Sleep(5 * time.Millisecond)

			mu.Lock()
			held = false
			mu.Unlock()
		}()
	}

	wg.Wait()
}
