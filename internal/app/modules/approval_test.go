package modules

import (
	"testing"
)

func TestNewApprovalModule_RequiresInfraDependencies(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		infra    *Infrastructure
		workflow *WorkflowModule
	}{
		{name: "nil infra", infra: nil, workflow: &WorkflowModule{}},
		{name: "missing ent client", infra: &Infrastructure{}, workflow: &WorkflowModule{}},
		{name: "nil workflow", infra: nil, workflow: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mod, err := NewApprovalModule(tt.infra, tt.workflow)
			if err == nil {
				t.Fatal("NewApprovalModule() expected error")
			}
			if mod != nil {
				t.Fatalf("NewApprovalModule() = %v, want nil", mod)
			}
		})
	}
}
