package convert

import "github.com/vk/jobwirego/internal/config"

// bytesPerMb is the quantum the scheduler accounts ram and disk in.
const bytesPerMb = int64(1) << 20

// validateResources enforces the scheduler's minimum quanta: cpu strictly
// positive, ram and disk at least one MiB. Exactly one MiB passes.
func validateResources(r config.Resources) error {
	if !(r.CPU > 0) {
		return configErrorf("resources.cpu", "must be greater than 0, got %v", r.CPU)
	}
	if r.RamBytes < bytesPerMb {
		return configErrorf("resources.ram", "must be at least %d bytes, got %d", bytesPerMb, r.RamBytes)
	}
	if r.DiskBytes < bytesPerMb {
		return configErrorf("resources.disk", "must be at least %d bytes, got %d", bytesPerMb, r.DiskBytes)
	}
	return nil
}
