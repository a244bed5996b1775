package testutils

import (
	"fmt"
	"sync"

	"github.com/KirkDiggler/rpg-toolkit/dice"
)

// ScriptedRoller is a dice.Roller that returns queued values in order and
// records every request as "NdM". It fails once the queue is exhausted.
type ScriptedRoller struct {
	mu     sync.Mutex
	values []int
	calls  []string
}

var _ dice.Roller = (*ScriptedRoller)(nil)

// NewScriptedRoller creates a roller that will return values in order
func NewScriptedRoller(values ...int) *ScriptedRoller {
	return &ScriptedRoller{values: values}
}

// Queue appends values to the end of the script
func (r *ScriptedRoller) Queue(values ...int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.values = append(r.values, values...)
}

// Calls returns every request made so far
func (r *ScriptedRoller) Calls() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.calls...)
}

// Remaining returns how many scripted values have not been consumed
func (r *ScriptedRoller) Remaining() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.values)
}

// Roll implements dice.Roller
func (r *ScriptedRoller) Roll(size int) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, fmt.Sprintf("1d%d", size))
	return r.next()
}

// RollN implements dice.Roller
func (r *ScriptedRoller) RollN(count, size int) ([]int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, fmt.Sprintf("%dd%d", count, size))
	out := make([]int, count)
	for i := range out {
		v, err := r.next()
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

func (r *ScriptedRoller) next() (int, error) {
	if len(r.values) == 0 {
		return 0, fmt.Errorf("scripted roller exhausted")
	}
	v := r.values[0]
	r.values = r.values[1:]
	return v, nil
}
