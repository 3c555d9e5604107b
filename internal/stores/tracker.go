package stores

import "sync"

// operationState tracks the busy flags the presentation layer reads to
// disable controls and show spinners: initialLoading for list/detail
// fetches, submitting for create/edit/delete, loading for attend/cancel,
// and target for the one control that triggered a delete.
//
// Every operation sets its flag before I/O starts and clears it in a defer,
// so a settled operation can never leave a spinner stuck.
type operationState struct {
	mu       sync.RWMutex
	onChange func()

	initialLoading bool
	submitting     bool
	loading        bool
	target         string
}

func newOperationState(onChange func()) *operationState {
	return &operationState{onChange: onChange}
}

func (s *operationState) setInitialLoading(v bool) {
	s.mu.Lock()
	s.initialLoading = v
	s.mu.Unlock()
	s.onChange()
}

func (s *operationState) setSubmitting(v bool) {
	s.mu.Lock()
	s.submitting = v
	s.mu.Unlock()
	s.onChange()
}

func (s *operationState) setLoading(v bool) {
	s.mu.Lock()
	s.loading = v
	s.mu.Unlock()
	s.onChange()
}

func (s *operationState) setTarget(target string) {
	s.mu.Lock()
	s.target = target
	s.mu.Unlock()
	s.onChange()
}

func (s *operationState) InitialLoading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.initialLoading
}

func (s *operationState) Submitting() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.submitting
}

func (s *operationState) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

func (s *operationState) Target() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.target
}
