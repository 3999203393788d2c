package vk

import "testing"

func TestVersionPacking(t *testing.T) {
	v := MakeVersion(1, 2, 163)

	t.Run("Major", func(t *testing.T) {
		if v.Major() != 1 {
			t.Errorf("expected major 1, got %d", v.Major())
		}
	})

	t.Run("Minor", func(t *testing.T) {
		if v.Minor() != 2 {
			t.Errorf("expected minor 2, got %d", v.Minor())
		}
	})

	t.Run("Patch", func(t *testing.T) {
		if v.Patch() != 163 {
			t.Errorf("expected patch 163, got %d", v.Patch())
		}
	})

	t.Run("String", func(t *testing.T) {
		if v.String() != "1.2.163" {
			t.Errorf("expected 1.2.163, got %s", v.String())
		}
	})
}

func TestDeviceName(t *testing.T) {
	var p PhysicalDeviceProperties

	t.Run("Empty", func(t *testing.T) {
		if p.DeviceNameString() != "" {
			t.Errorf("expected empty name, got %q", p.DeviceNameString())
		}
	})

	t.Run("RoundTrip", func(t *testing.T) {
		p.SetDeviceName("SimDevice A")
		if p.DeviceNameString() != "SimDevice A" {
			t.Errorf("expected SimDevice A, got %q", p.DeviceNameString())
		}
	})

	t.Run("Truncation", func(t *testing.T) {
		long := make([]byte, 2*MaxPhysicalDeviceNameSize)
		for i := range long {
			long[i] = 'x'
		}
		p.SetDeviceName(string(long))
		if len(p.DeviceNameString()) != MaxPhysicalDeviceNameSize-1 {
			t.Errorf("expected %d chars, got %d", MaxPhysicalDeviceNameSize-1, len(p.DeviceNameString()))
		}
	})

	t.Run("Overwrite", func(t *testing.T) {
		p.SetDeviceName("Short")
		if p.DeviceNameString() != "Short" {
			t.Errorf("expected Short, got %q", p.DeviceNameString())
		}
	})
}

func TestMemoryPrefixes(t *testing.T) {
	m := PhysicalDeviceMemoryProperties{
		MemoryHeapCount: 2,
		MemoryTypeCount: 3,
	}
	m.MemoryHeaps[0] = MemoryHeap{Size: 1 << 30, Flags: MemoryHeapDeviceLocalBit}
	m.MemoryHeaps[1] = MemoryHeap{Size: 1 << 28}

	if len(m.Heaps()) != 2 {
		t.Errorf("expected 2 heaps, got %d", len(m.Heaps()))
	}
	if len(m.Types()) != 3 {
		t.Errorf("expected 3 types, got %d", len(m.Types()))
	}

	t.Run("CountBeyondCapacity", func(t *testing.T) {
		m.MemoryHeapCount = MaxMemoryHeaps + 5
		if len(m.Heaps()) != MaxMemoryHeaps {
			t.Errorf("expected clamp to %d, got %d", MaxMemoryHeaps, len(m.Heaps()))
		}
	})
}

func TestPhysicalDeviceTypeString(t *testing.T) {
	tests := []struct {
		dt   PhysicalDeviceType
		want string
	}{
		{PhysicalDeviceTypeOther, "OTHER"},
		{PhysicalDeviceTypeIntegratedGPU, "INTEGRATED_GPU"},
		{PhysicalDeviceTypeDiscreteGPU, "DISCRETE_GPU"},
		{PhysicalDeviceTypeVirtualGPU, "VIRTUAL_GPU"},
		{PhysicalDeviceTypeCPU, "CPU"},
		{PhysicalDeviceType(99), "UNKNOWN"},
	}
	for _, tc := range tests {
		if got := tc.dt.String(); got != tc.want {
			t.Errorf("PhysicalDeviceType(%d).String() = %q, want %q", tc.dt, got, tc.want)
		}
	}
}
