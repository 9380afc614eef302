package contract

// MockState keeps contract storage in a plain map for host-side runs and
// tests. Unlike the host fake in the sdk package, this one is inspectable
// through the same State interface the contract uses.
type MockState struct {
	db map[string]string
}

func NewMockState() *MockState {
	return &MockState{db: make(map[string]string)}
}

func (m *MockState) Set(key, value string) {
	m.db[key] = value
}

func (m *MockState) Get(key string) *string {
	val, ok := m.db[key]
	if !ok {
		return nil
	}
	return &val
}

func (m *MockState) Delete(key string) {
	delete(m.db, key)
}

// Len reports how many keys the contract wrote, handy for sanity checks.
func (m *MockState) Len() int {
	return len(m.db)
}
