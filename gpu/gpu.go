// Package gpu reports the compute core counts of known accelerator devices,
// used elsewhere to size kernel launches for multi-scalar multiplication and
// FFT off-loading. It is a lookup table with an environment override, not a
// dispatcher: no device is ever opened here.
package gpu

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/hassoon1986/ginger-lib/logger"
)

// DefaultCoreCount is assumed for devices missing from the table. Kernel
// sizing is then best effort only.
const DefaultCoreCount = 2560

// CustomGPUEnv names the environment variable merged over the built-in
// table at first use: a comma separated list of "device name:cores" pairs.
// A malformed value is a configuration defect and panics.
const CustomGPUEnv = "BELLMAN_CUSTOM_GPU"

var (
	coreCountsOnce sync.Once
	coreCounts     map[string]int
)

// CoreCount returns the number of compute cores of the named device, as
// reported by the device driver. Unknown devices fall back to
// DefaultCoreCount with a warning, since kernel tuning is only optimal when
// the real count is known.
func CoreCount(deviceName string) int {
	coreCountsOnce.Do(func() {
		coreCounts = buildCoreCounts(os.Getenv(CustomGPUEnv))
	})
	if n, ok := coreCounts[deviceName]; ok {
		return n
	}
	logger.Logger().Warn().
		Str("device", deviceName).
		Int("assumed", DefaultCoreCount).
		Msg("number of cores for device unknown, best performance needs a " + CustomGPUEnv + " entry")
	return DefaultCoreCount
}

func buildCoreCounts(custom string) map[string]int {
	counts := map[string]int{
		// Pocl
		"pthread-Intel(R) Core(TM) i7-4870HQ CPU @ 2.50GHz": 4,

		// Apple
		"Iris Pro": 40,

		// AMD
		"gfx1010": 2560,

		// NVIDIA
		"Quadro RTX 6000": 4608,

		"TITAN RTX": 4608,

		"Tesla V100":   5120,
		"Tesla P100":   3584,
		"Tesla T4":     2560,
		"Quadro M5000": 2048,

		"GeForce RTX 2080 Ti":    4352,
		"GeForce RTX 2080 SUPER": 3072,
		"GeForce RTX 2080":       2944,
		"GeForce RTX 2070 SUPER": 2560,

		"GeForce GTX 1080 Ti":    3584,
		"GeForce GTX 1080":       2560,
		"GeForce GTX 2060":       1920,
		"GeForce GTX 1660 Ti":    1536,
		"GeForce GTX 1060":       1280,
		"GeForce GTX 1050":       640,
		"GeForce GTX 1650 SUPER": 1280,
		"GeForce GTX 1650":       896,
	}

	if custom == "" {
		return counts
	}

	log := logger.Logger()
	for _, card := range strings.Split(custom, ",") {
		name, cores, found := strings.Cut(card, ":")
		if !found {
			panic(fmt.Sprintf("gpu: invalid %s entry %q", CustomGPUEnv, card))
		}
		n, err := strconv.Atoi(strings.TrimSpace(cores))
		if err != nil {
			panic(fmt.Sprintf("gpu: invalid %s core count %q: %v", CustomGPUEnv, cores, err))
		}
		name = strings.TrimSpace(name)
		log.Info().Str("device", name).Int("cores", n).Msg("adding custom device to core count table")
		counts[name] = n
	}
	return counts
}
