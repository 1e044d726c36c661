package detection

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
)

// Event types that carry a scoring rule. Any other value is valid and simply
// matches no type specific rule.
const (
	TypeTransfer  = "TRANSFER"
	TypeTokenMint = "TOKEN_MINT"
)

// ErrMalformedPayload is returned by DecodeBatch when the payload is not JSON.
var ErrMalformedPayload = errors.New("malformed webhook payload")

// Event is one transaction-derived record of a webhook batch.
//
// Every sub-record is optional. Decoding is lenient: a missing, null or
// mistyped field leaves the corresponding member empty instead of failing,
// so a damaged field only withholds the rule that reads it.
type Event struct {
	Type          string         `json:"type,omitempty"`
	Transfer      *Transfer      `json:"transfer,omitempty"`
	TokenTransfer *TokenTransfer `json:"tokenTransfer,omitempty"`
	ProgramInfo   *ProgramInfo   `json:"programInfo,omitempty"`
	AccountData   []AccountData  `json:"accountData,omitempty"`
}

// Transfer is a native transfer. Amount is expressed in lamports and is nil
// when absent or not an integer.
type Transfer struct {
	Amount *int64 `json:"amount,omitempty"`
}

// TokenTransfer carries the token mint. An empty Mint means absent.
type TokenTransfer struct {
	Mint string `json:"mint,omitempty"`
}

// ProgramInfo identifies the invoked program. An empty ProgramID means absent.
type ProgramInfo struct {
	ProgramID string `json:"programId,omitempty"`
}

// AccountData is one account touched by the transaction.
type AccountData struct {
	Account string `json:"account"`
}

type jsonObject = map[string]json.RawMessage

// field decodes fields[key] into T, reporting false when the key is absent
// or holds a value of another JSON type.
func field[T any](fields jsonObject, key string) (T, bool) {
	var v T

	raw, ok := fields[key]
	if !ok {
		return v, false
	}

	if err := json.Unmarshal(raw, &v); err != nil {
		return v, false
	}

	return v, true
}

// object decodes fields[key] as a JSON object. null counts as absent.
func object(fields jsonObject, key string) (jsonObject, bool) {
	obj, ok := field[jsonObject](fields, key)
	return obj, ok && obj != nil
}

// integer parses a JSON number holding an integral value. Quoted numbers and
// fractional or out of range values are rejected.
func integer(raw json.RawMessage) (int64, bool) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || raw[0] == '"' {
		return 0, false
	}

	var n json.Number
	if err := json.Unmarshal(raw, &n); err != nil {
		return 0, false
	}

	if v, err := n.Int64(); err == nil {
		return v, true
	}

	f, err := n.Float64()
	if err != nil || f != math.Trunc(f) || f < math.MinInt64 || f >= math.MaxInt64 {
		return 0, false
	}

	return int64(f), true
}

// UnmarshalJSON implements json.Unmarshaler. It never fails: a value that is
// not a JSON object decodes to an empty Event.
func (e *Event) UnmarshalJSON(data []byte) error {
	*e = Event{}

	var fields jsonObject
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil
	}

	e.Type, _ = field[string](fields, "type")

	if transfer, ok := object(fields, "transfer"); ok {
		e.Transfer = &Transfer{}
		if amount, ok := integer(transfer["amount"]); ok {
			e.Transfer.Amount = &amount
		}
	}

	if tokenTransfer, ok := object(fields, "tokenTransfer"); ok {
		mint, _ := field[string](tokenTransfer, "mint")
		e.TokenTransfer = &TokenTransfer{Mint: mint}
	}

	if programInfo, ok := object(fields, "programInfo"); ok {
		programID, _ := field[string](programInfo, "programId")
		e.ProgramInfo = &ProgramInfo{ProgramID: programID}
	}

	accounts, _ := field[[]json.RawMessage](fields, "accountData")
	for _, raw := range accounts {
		var account jsonObject
		if err := json.Unmarshal(raw, &account); err != nil {
			continue
		}

		if address, ok := field[string](account, "account"); ok {
			e.AccountData = append(e.AccountData, AccountData{Account: address})
		}
	}

	return nil
}

// DecodeBatch normalizes a webhook payload into a sequence of events.
//
// Accepted shapes:
//   - a JSON array of events;
//   - an envelope object with a "data" array of events;
//   - a single event object.
//
// An envelope whose "data" is not an array, or any other JSON value, yields
// an empty batch. Only a payload that is not valid JSON is an error.
func DecodeBatch(data []byte) ([]Event, error) {
	data = bytes.TrimSpace(data)
	if !json.Valid(data) {
		return nil, ErrMalformedPayload
	}

	switch data[0] {
	case '[':
		var events []Event
		if err := json.Unmarshal(data, &events); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrMalformedPayload, err)
		}
		return events, nil

	case '{':
		var envelope jsonObject
		if err := json.Unmarshal(data, &envelope); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrMalformedPayload, err)
		}

		if raw, ok := envelope["data"]; ok {
			var events []Event
			if err := json.Unmarshal(raw, &events); err != nil {
				return []Event{}, nil
			}
			return events, nil
		}

		var event Event
		_ = event.UnmarshalJSON(data)
		return []Event{event}, nil
	}

	return []Event{}, nil
}
