package stellar

import (
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/stellar/go-stellar-sdk/xdr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func failedResultXDR(t *testing.T) string {
	t.Helper()

	opResults := []xdr.OperationResult{{
		Code: xdr.OperationResultCodeOpInner,
		Tr: &xdr.OperationResultTr{
			Type: xdr.OperationTypeInvokeHostFunction,
			InvokeHostFunctionResult: &xdr.InvokeHostFunctionResult{
				Code: xdr.InvokeHostFunctionResultCodeInvokeHostFunctionTrapped,
			},
		},
	}}
	result := xdr.TransactionResult{
		FeeCharged: 100,
		Result: xdr.TransactionResultResult{
			Code:    xdr.TransactionResultCodeTxFailed,
			Results: &opResults,
		},
	}
	encoded, err := xdr.MarshalBase64(result)
	require.NoError(t, err)

	return encoded
}

func TestDescribeFailure(t *testing.T) {
	t.Parallel()

	cyclic := map[string]any{"message": "outer"}
	cyclic["error"] = cyclic

	tests := []struct {
		name    string
		give    FailurePayload
		want    string
		wantAll []string
	}{
		{
			name: "empty payload",
			give: FailurePayload{},
			want: unknownFailure,
		},
		{
			name: "blank strings only",
			give: FailurePayload{Err: "   "},
			want: unknownFailure,
		},
		{
			name: "status and plain message",
			give: FailurePayload{Status: "ERROR", Err: "bad sequence"},
			want: "status=ERROR | bad sequence",
		},
		{
			name: "undecodable result xdr is kept raw",
			give: FailurePayload{ResultXDR: "!!garbage!!"},
			want: "resultXdr=!!garbage!!",
		},
		{
			name: "events and auth are numbered",
			give: FailurePayload{DiagnosticEvents: []string{"e0", "e1"}, Auth: []string{"a0"}},
			want: "diagnosticEvents=[0: e0, 1: e1] | auth=[0: a0]",
		},
		{
			name: "wrapped error chain",
			give: FailurePayload{Err: fmt.Errorf("submit: %w", &RPCError{Code: -1, Message: "tx_bad_seq"})},
			wantAll: []string{
				"submit: rpc error -1: tx_bad_seq",
			},
		},
		{
			name: "json object with nested error and result",
			give: FailurePayload{Err: json.RawMessage(`{"message":"outer","error":{"code":"inner-code"},"result":"deep"}`)},
			want: "outer | inner=inner-code | result=deep",
		},
		{
			name: "snake case keys",
			give: FailurePayload{Err: map[string]any{
				"result_xdr":        "zzz",
				"diagnostic_events": []any{"x", 1.0},
			}},
			want: "resultXdr=zzz | diagnosticEvents=[0: x, 1: 1]",
		},
		{
			name: "self referencing object terminates",
			give: FailurePayload{Err: cyclic},
			want: "outer",
		},
		{
			name: "opaque value",
			give: FailurePayload{Err: 42},
			want: "42",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := DescribeFailure(tt.give)
			assert.NotEmpty(t, got)
			if tt.want != "" {
				assert.Equal(t, tt.want, got)
			}
			for _, part := range tt.wantAll {
				assert.Contains(t, got, part)
			}
		})
	}
}

func TestDescribeFailure_ResultCodes(t *testing.T) {
	t.Parallel()

	got := DescribeFailure(FailurePayload{Status: "FAILED", ResultXDR: failedResultXDR(t)})
	assert.Equal(t, "status=FAILED | TransactionResultCodeTxFailed; hostFn=InvokeHostFunctionResultCodeInvokeHostFunctionTrapped", got)
}

type panicStringer struct{}

func (panicStringer) String() string { panic("boom") }

func TestDescribeFailure_NeverPanics(t *testing.T) {
	t.Parallel()

	var got string
	require.NotPanics(t, func() {
		got = DescribeFailure(FailurePayload{Err: panicStringer{}})
	})
	assert.Contains(t, got, unknownFailure)
}

func TestDescribeFailure_DepthBound(t *testing.T) {
	t.Parallel()

	var err error = errors.New("root")
	for i := 0; i < 20; i++ {
		err = &wrapped{msg: fmt.Sprintf("level %d", i), inner: err}
	}

	got := DescribeFailure(FailurePayload{Err: err})
	assert.Contains(t, got, "level 19")
	assert.NotContains(t, got, "root")
}

type wrapped struct {
	msg   string
	inner error
}

func (w *wrapped) Error() string { return w.msg }
func (w *wrapped) Unwrap() error { return w.inner }

func TestDescribeSimulation(t *testing.T) {
	t.Parallel()

	assert.Equal(t, unknownSimulation, DescribeSimulation(nil))
	assert.Equal(t, unknownSimulation, DescribeSimulation(&SimulateTransactionResponse{}))

	got := DescribeSimulation(&SimulateTransactionResponse{
		Error:   "HostError: Error(Auth, InvalidAction)",
		Events:  []string{"ev"},
		Results: []SimulateHostFunctionResult{{Auth: []string{"au"}}},
	})
	assert.Equal(t, "HostError: Error(Auth, InvalidAction) | diagnosticEvents=[0: ev] | auth=[0: au]", got)
}
