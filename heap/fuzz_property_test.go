package heap

import (
	"math/rand"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRandomAllocFreeGuardsInvariants drives the allocator with a random
// but reproducible workload and validates the structural invariants after
// every step.
func TestRandomAllocFreeGuardsInvariants(t *testing.T) {
	h := New()
	rng := rand.New(rand.NewSource(42)) // fixed seed for reproducibility

	live := make(map[unsafe.Pointer]int)
	for i := 0; i < 500; i++ {
		switch rng.Intn(3) {
		case 0: // allocate
			size := 1 + rng.Intn(512)
			p := h.Malloc(size)
			require.NotNilf(t, p, "step %d: Malloc(%d)", i, size)
			require.NotContains(t, live, p, "step %d: pointer handed out twice", i)
			live[p] = size

		case 1: // free one live pointer
			for p := range live {
				h.Free(p)
				require.Falsef(t, h.IsValidAddress(p), "step %d: freed pointer validates", i)
				delete(live, p)
				break
			}

		case 2: // realloc one live pointer
			for p := range live {
				ns := 1 + rng.Intn(512)
				q := h.Realloc(p, ns)
				require.NotNilf(t, q, "step %d: Realloc(%d)", i, ns)
				delete(live, p)
				live[q] = ns
				break
			}
		}

		assertHeapInvariants(t, h)
	}

	// Every live pointer still validates (and only those).
	for p := range live {
		assert.True(t, h.IsValidAddress(p))
	}

	r := h.FragmentationRate()
	assert.GreaterOrEqual(t, r, 0.0)
	assert.LessOrEqual(t, r, 1.0)

	for p := range live {
		h.Free(p)
	}
	assertHeapInvariants(t, h)
	assert.Zero(t, h.UsageStats().AllocatedBlocks)
}

// TestPolicyWorkloadsStayConsistent runs the same partial-free workload
// under each policy and checks stats coherence rather than performance.
func TestPolicyWorkloadsStayConsistent(t *testing.T) {
	for _, policy := range []Policy{FirstFit, BestFit, WorstFit} {
		h := New()
		h.SetPolicy(policy)
		rng := rand.New(rand.NewSource(7))

		ptrs := make([]unsafe.Pointer, 200)
		for i := range ptrs {
			ptrs[i] = h.Malloc(1 + rng.Intn(256))
			require.NotNil(t, ptrs[i])
		}
		for i := 0; i < len(ptrs); i += 2 {
			h.Free(ptrs[i])
			ptrs[i] = nil
		}

		s := h.UsageStats()
		assert.Equalf(t, 100, s.AllocatedBlocks, "policy %s", policy)
		assert.Positive(t, s.FreeBlocks)
		assertHeapInvariants(t, h)

		r := h.FragmentationRate()
		assert.GreaterOrEqual(t, r, 0.0)
		assert.LessOrEqual(t, r, 1.0)
	}
}
