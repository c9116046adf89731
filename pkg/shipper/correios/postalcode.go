package correios

import (
	"strings"

	"github.com/superfellype/allura-concierge-sub001/pkg/shipper"
)

// PostalCodeLength is the number of digits in a normalized CEP.
const PostalCodeLength = 8

// State is a Brazilian federative unit.
type State string

const (
	StateAC State = "AC"
	StateAL State = "AL"
	StateAM State = "AM"
	StateAP State = "AP"
	StateBA State = "BA"
	StateCE State = "CE"
	StateDF State = "DF"
	StateES State = "ES"
	StateGO State = "GO"
	StateMA State = "MA"
	StateMG State = "MG"
	StateMS State = "MS"
	StateMT State = "MT"
	StatePA State = "PA"
	StatePB State = "PB"
	StatePE State = "PE"
	StatePI State = "PI"
	StatePR State = "PR"
	StateRJ State = "RJ"
	StateRN State = "RN"
	StateRO State = "RO"
	StateRR State = "RR"
	StateRS State = "RS"
	StateSC State = "SC"
	StateSE State = "SE"
	StateSP State = "SP"
	StateTO State = "TO"
)

// defaultState is used when no prefix range matches.
const defaultState = StateSP

type prefixRange struct {
	from, to int
	state    State
}

// stateRanges maps the first two CEP digits to a state. Bounds are inclusive.
var stateRanges = []prefixRange{
	{1, 19, StateSP},
	{20, 28, StateRJ},
	{29, 29, StateES},
	{30, 39, StateMG},
	{40, 48, StateBA},
	{49, 49, StateSE},
	{50, 56, StatePE},
	{57, 57, StateAL},
	{58, 58, StatePB},
	{59, 59, StateRN},
	{60, 63, StateCE},
	{64, 64, StatePI},
	{65, 65, StateMA},
	{66, 68, StatePA},
	{69, 69, StateAM},
	{70, 73, StateDF},
	{74, 76, StateGO},
	{77, 77, StateTO},
	{78, 78, StateMT},
	{79, 79, StateMS},
	{80, 87, StatePR},
	{88, 89, StateSC},
	{90, 99, StateRS},
}

// NormalizePostalCode strips every non-digit character from a CEP and checks
// that exactly eight digits remain.
func NormalizePostalCode(raw string) (string, error) {
	var b strings.Builder
	b.Grow(len(raw))
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	cep := b.String()
	if len(cep) != PostalCodeLength {
		return "", shipper.ErrInvalidPostalCode
	}
	return cep, nil
}

// StateForPostalCode resolves the state of a normalized CEP from its two
// leading digits.
func StateForPostalCode(cep string) State {
	if len(cep) < 2 {
		return defaultState
	}
	prefix := int(cep[0]-'0')*10 + int(cep[1]-'0')
	for _, r := range stateRanges {
		if prefix >= r.from && prefix <= r.to {
			return r.state
		}
	}
	return defaultState
}
