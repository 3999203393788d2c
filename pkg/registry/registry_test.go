package registry

import (
	"sync"
	"testing"

	"github.com/devsim-project/devsim-go/pkg/vk"
)

func TestCreateAndFind(t *testing.T) {
	r := New()

	data := r.Create(vk.PhysicalDevice(0x1001), vk.Instance(0xA))
	if data == nil {
		t.Fatal("Create returned nil")
	}
	if data.PhysicalDevice != 0x1001 || data.Instance != 0xA {
		t.Errorf("unexpected identity: %#x owned by %#x", uint64(data.PhysicalDevice), uint64(data.Instance))
	}

	t.Run("ZeroInitialized", func(t *testing.T) {
		if data.Properties.VendorID != 0 || len(data.QueueFamilies) != 0 {
			t.Error("new record must be zero-initialized")
		}
	})

	t.Run("StableReference", func(t *testing.T) {
		found, ok := r.Find(vk.PhysicalDevice(0x1001))
		if !ok {
			t.Fatal("Find missed a created entry")
		}
		if found != data {
			t.Error("Find must return the same record Create returned")
		}
	})

	t.Run("MutationVisible", func(t *testing.T) {
		data.Properties.VendorID = 42
		found, _ := r.Find(vk.PhysicalDevice(0x1001))
		if found.Properties.VendorID != 42 {
			t.Error("mutation through the returned reference must be visible")
		}
	})
}

func TestFindMiss(t *testing.T) {
	r := New()
	if _, ok := r.Find(vk.PhysicalDevice(0xDEAD)); ok {
		t.Error("Find must miss for an unregistered handle")
	}
}

func TestDuplicateCreatePanics(t *testing.T) {
	r := New()
	r.Create(vk.PhysicalDevice(1), vk.Instance(1))

	defer func() {
		if recover() == nil {
			t.Error("expected panic on duplicate create")
		}
	}()
	r.Create(vk.PhysicalDevice(1), vk.Instance(2))
}

func TestRemoveInstance(t *testing.T) {
	r := New()
	r.Create(vk.PhysicalDevice(1), vk.Instance(0xA))
	r.Create(vk.PhysicalDevice(2), vk.Instance(0xA))
	r.Create(vk.PhysicalDevice(3), vk.Instance(0xB))

	if removed := r.RemoveInstance(vk.Instance(0xA)); removed != 2 {
		t.Errorf("expected 2 removed, got %d", removed)
	}
	if r.Len() != 1 {
		t.Errorf("expected 1 remaining entry, got %d", r.Len())
	}
	if _, ok := r.Find(vk.PhysicalDevice(3)); !ok {
		t.Error("entry of another instance must survive the sweep")
	}

	// A swept handle may be registered again by a new instance.
	r.Create(vk.PhysicalDevice(1), vk.Instance(0xC))
}

func TestConcurrentAccess(t *testing.T) {
	r := New()
	const devices = 64

	var wg sync.WaitGroup
	for i := 0; i < devices; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			r.Create(vk.PhysicalDevice(0x1000+i), vk.Instance(1))
		}(i)
	}
	for i := 0; i < devices; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			r.Find(vk.PhysicalDevice(0x1000 + i))
		}(i)
	}
	wg.Wait()

	if r.Len() != devices {
		t.Errorf("expected %d entries, got %d", devices, r.Len())
	}
}
