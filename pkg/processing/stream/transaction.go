package stream

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	nferrors "github.com/codenexus/nexusflow/pkg/common/errors"
)

// TransactionStream accumulates net flow from financial transaction tokens.
// "buy:<int>" adds to the running net flow, "sell:<int>" subtracts from it.
type TransactionStream struct {
	base

	netFlow int64
}

// NewTransactionStream creates a new transaction stream.
func NewTransactionStream(id string) *TransactionStream {
	return &TransactionStream{base: base{id: id}}
}

// Kind returns the stream variant name.
func (*TransactionStream) Kind() string {
	return "transaction"
}

// ProcessBatch applies buy and sell operations and reports the batch size and
// the running signed net flow.
func (t *TransactionStream) ProcessBatch(batch []string) (string, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.processed += int64(len(batch))

	for _, item := range batch {
		var payload string
		var sign int64

		switch {
		case strings.Contains(item, "buy:"):
			_, payload, _ = strings.Cut(item, "buy:")
			sign = 1
		case strings.Contains(item, "sell:"):
			_, payload, _ = strings.Cut(item, "sell:")
			sign = -1
		default:
			continue
		}

		amount, err := strconv.ParseInt(payload, 10, 64)
		if err != nil {
			t.errors++
			return "", nferrors.NewOperationError(t.Kind(), "ProcessBatch",
				errors.Wrapf(err, "token %q", item)).
				WithContext("stream " + t.id)
		}

		t.netFlow += sign * amount
	}

	return fmt.Sprintf("Transaction analysis: %d operations, net flow: %+d units",
		len(batch), t.netFlow), nil
}

// Filter keeps transactions whose magnitude after the colon exceeds 100.
func (t *TransactionStream) Filter(batch []string, criteria Criteria) []string {
	if criteria != HighPriority {
		return batch
	}

	var out []string
	for _, item := range batch {
		_, payload, found := strings.Cut(item, ":")
		if !found {
			continue
		}
		if amount, err := strconv.ParseInt(payload, 10, 64); err == nil && amount > 100 {
			out = append(out, item)
		}
	}
	return out
}
