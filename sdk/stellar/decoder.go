package stellar

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/stellar/go-stellar-sdk/xdr"
)

const (
	unknownFailure    = "Unknown Soroban error"
	unknownSimulation = "Unknown simulation error"

	// maxNestingDepth bounds how far nested error payloads are unwrapped.
	maxNestingDepth = 8
)

// FailurePayload is a failure reported by the ledger or contract layer. Any field may be empty.
type FailurePayload struct {
	Status           string
	ResultXDR        string
	Err              any
	DiagnosticEvents []string
	Auth             []string
}

// DescribeFailure renders a failure payload as one diagnostic string.
//
// The output lists, in order and separated by " | ": the status, the decoded result code,
// nested error messages, diagnostic events and authorization entries. It never returns an empty
// string and never panics.
func DescribeFailure(p FailurePayload) (out string) {
	defer func() {
		if r := recover(); r != nil {
			out = fmt.Sprintf("%s (decoder panic: %v)", unknownFailure, r)
		}
	}()

	var messages []string
	if p.Status != "" {
		messages = append(messages, "status="+p.Status)
	}
	if p.ResultXDR != "" {
		messages = append(messages, describeResultXDR(p.ResultXDR))
	}

	w := &errorWalker{seen: map[uintptr]bool{}}
	messages = append(messages, w.walk(p.Err, 0)...)

	if len(p.DiagnosticEvents) > 0 {
		messages = append(messages, "diagnosticEvents="+renderList(p.DiagnosticEvents))
	}
	if len(p.Auth) > 0 {
		messages = append(messages, "auth="+renderList(p.Auth))
	}

	if len(messages) == 0 {
		return unknownFailure
	}

	return strings.Join(messages, " | ")
}

// DescribeSimulation renders a failed simulation as one diagnostic string.
func DescribeSimulation(sim *SimulateTransactionResponse) string {
	if sim == nil {
		return unknownSimulation
	}

	var auth []string
	for _, r := range sim.Results {
		auth = append(auth, r.Auth...)
	}

	var err any
	if sim.Error != "" {
		err = sim.Error
	}

	out := DescribeFailure(FailurePayload{
		Err:              err,
		DiagnosticEvents: sim.Events,
		Auth:             auth,
	})
	if out == unknownFailure {
		return unknownSimulation
	}

	return out
}

// describeResultXDR decodes a base64 TransactionResult into its result code, plus the host
// function result code of the first operation when there is one. Undecodable input is returned
// verbatim.
func describeResultXDR(resultXDR string) string {
	var result xdr.TransactionResult
	if err := xdr.SafeUnmarshalBase64(resultXDR, &result); err != nil {
		return "resultXdr=" + resultXDR
	}

	code := result.Result.Code.String()
	opResults, ok := result.Result.GetResults()
	if !ok || len(opResults) == 0 || opResults[0].Tr == nil {
		return code
	}
	if invoke, ok := opResults[0].Tr.GetInvokeHostFunctionResult(); ok {
		return code + "; hostFn=" + invoke.Code.String()
	}

	return code
}

func renderList(items []string) string {
	rendered := make([]string, len(items))
	for i, item := range items {
		rendered[i] = fmt.Sprintf("%d: %s", i, item)
	}

	return "[" + strings.Join(rendered, ", ") + "]"
}

// errorWalker turns an error payload of unknown shape into messages. Each known shape is tried
// in order and anything else falls through to plain formatting.
type errorWalker struct {
	seen map[uintptr]bool
}

func (w *errorWalker) walk(v any, depth int) []string {
	if v == nil || depth > maxNestingDepth || w.visited(v) {
		return nil
	}

	switch e := v.(type) {
	case string:
		return nonEmpty(e)
	case json.RawMessage:
		return w.walkJSON(e, depth)
	case *RPCError:
		msgs := nonEmpty(e.Message)
		if len(e.Data) > 0 {
			msgs = append(msgs, w.walkJSON(e.Data, depth+1)...)
		}

		return msgs
	case error:
		return w.walkError(e, depth)
	case map[string]any:
		return w.walkObject(e, depth)
	case []any:
		var msgs []string
		for _, item := range e {
			msgs = append(msgs, w.walk(item, depth+1)...)
		}

		return msgs
	case fmt.Stringer:
		return nonEmpty(e.String())
	default:
		return nonEmpty(formatOpaque(v))
	}
}

// formatOpaque formats values of unknown type. Containers go through encoding/json, which
// detects reference cycles, instead of fmt which does not.
func formatOpaque(v any) string {
	switch reflect.ValueOf(v).Kind() {
	case reflect.Map, reflect.Slice, reflect.Array, reflect.Struct, reflect.Pointer, reflect.Interface:
		b, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprintf("<%T>", v)
		}

		return string(b)
	default:
		return fmt.Sprintf("%v", v)
	}
}

func (w *errorWalker) walkJSON(raw json.RawMessage, depth int) []string {
	var decoded any
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return nonEmpty(string(raw))
	}

	return w.walk(decoded, depth)
}

func (w *errorWalker) walkError(err error, depth int) []string {
	msgs := nonEmpty(err.Error())

	inner := errors.Unwrap(err)
	if inner == nil || inner == err {
		return msgs
	}
	for _, m := range w.walk(inner, depth+1) {
		if !strings.Contains(err.Error(), m) {
			msgs = append(msgs, "inner="+m)
		}
	}

	return msgs
}

func (w *errorWalker) walkObject(obj map[string]any, depth int) []string {
	var msgs []string
	if m, ok := firstString(obj, "message", "error", "code"); ok {
		msgs = append(msgs, m)
	}
	if resultXDR, ok := firstString(obj, "resultXdr", "result_xdr"); ok {
		msgs = append(msgs, describeResultXDR(resultXDR))
	}
	if events, ok := firstSlice(obj, "diagnosticEvents", "diagnostic_events"); ok && len(events) > 0 {
		msgs = append(msgs, "diagnosticEvents="+renderList(stringify(events)))
	}
	if nested, ok := obj["error"]; ok {
		if _, isString := nested.(string); !isString {
			for _, m := range w.walk(nested, depth+1) {
				msgs = append(msgs, "inner="+m)
			}
		}
	}
	for _, key := range []string{"result", "innerResult"} {
		if nested, ok := obj[key]; ok {
			for _, m := range w.walk(nested, depth+1) {
				msgs = append(msgs, "result="+m)
			}

			break
		}
	}

	if len(msgs) == 0 {
		if b, err := json.Marshal(obj); err == nil && string(b) != "{}" {
			msgs = append(msgs, string(b))
		}
	}

	return msgs
}

// visited records reference values so that self-referencing payloads are walked once.
func (w *errorWalker) visited(v any) bool {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Map, reflect.Pointer, reflect.Slice:
		if rv.IsNil() {
			return false
		}
		p := rv.Pointer()
		if w.seen[p] {
			return true
		}
		w.seen[p] = true
	}

	return false
}

func firstString(obj map[string]any, keys ...string) (string, bool) {
	for _, k := range keys {
		if s, ok := obj[k].(string); ok && strings.TrimSpace(s) != "" {
			return s, true
		}
	}

	return "", false
}

func firstSlice(obj map[string]any, keys ...string) ([]any, bool) {
	for _, k := range keys {
		if s, ok := obj[k].([]any); ok {
			return s, true
		}
	}

	return nil, false
}

func stringify(items []any) []string {
	out := make([]string, len(items))
	for i, item := range items {
		if s, ok := item.(string); ok {
			out[i] = s

			continue
		}
		out[i] = formatOpaque(item)
	}

	return out
}

func nonEmpty(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}

	return []string{s}
}
