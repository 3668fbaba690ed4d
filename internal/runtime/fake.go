package runtime

import (
	"context"
	"slices"
	"sync"
)

// Call records one invocation seen by a FakeRunner.
type Call struct {
	Name string
	Args []string
	Dir  string
}

// FakeRunner records calls instead of spawning processes. Results are
// looked up by command name; commands without a scripted result succeed.
type FakeRunner struct {
	mu      sync.Mutex
	Results map[string]Result
	Calls   []Call
}

// NewFakeRunner returns a FakeRunner with no scripted results.
func NewFakeRunner() *FakeRunner {
	return &FakeRunner{Results: make(map[string]Result)}
}

// Run records the call and returns the scripted result for name.
func (f *FakeRunner) Run(_ context.Context, name string, args []string, dir string) Result {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.Calls = append(f.Calls, Call{Name: name, Args: slices.Clone(args), Dir: dir})
	if res, ok := f.Results[name]; ok {
		return res
	}
	return Succeeded()
}

// Names returns the command names in call order.
func (f *FakeRunner) Names() []string {
	f.mu.Lock()
	defer f.mu.Unlock()

	names := make([]string, 0, len(f.Calls))
	for _, c := range f.Calls {
		names = append(names, c.Name)
	}
	return names
}
