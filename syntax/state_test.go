package syntax

import "testing"

func TestDefaultState(t *testing.T) {
	s := defaultState()
	if !s.allowObjectExpr {
		t.Error("defaultState should allow object expressions")
	}
	if !s.gradualTypes {
		t.Error("defaultState should have gradual types enabled by default")
	}
	if s.inFunction || s.inAsync || s.inGenerator || s.inLoop || s.inSwitch || s.inClassCtor || s.strict || s.noIn {
		t.Error("defaultState should have every other flag false")
	}
}

func TestStateWithReturnsModifiedCopy(t *testing.T) {
	s := defaultState()
	s2 := s.with(func(st *state) { st.inLoop = true })

	if s.inLoop {
		t.Error("with() should not mutate the receiver")
	}
	if !s2.inLoop {
		t.Error("with() should apply the mutation to the returned copy")
	}
}

func TestStateWithPreservesUnrelatedFields(t *testing.T) {
	s := defaultState().with(func(st *state) { st.strict = true })
	s2 := s.with(func(st *state) { st.inSwitch = true })

	if !s2.strict {
		t.Error("with() should preserve fields set by an earlier with() call")
	}
	if !s2.inSwitch {
		t.Error("with() should apply its own mutation")
	}
}
