package correios

import "fmt"

// Region is one of the five Brazilian macro-regions.
type Region string

const (
	RegionSudeste     Region = "sudeste"
	RegionSul         Region = "sul"
	RegionCentroOeste Region = "centro_oeste"
	RegionNordeste    Region = "nordeste"
	RegionNorte       Region = "norte"
)

// Tier is the coarse distance class of a destination relative to the
// warehouse.
type Tier string

const (
	TierLocal    Tier = "local"
	TierRegional Tier = "regional"
	TierNacional Tier = "nacional"
)

// Tiers lists every distance tier from nearest to farthest.
var Tiers = []Tier{TierLocal, TierRegional, TierNacional}

// Every order ships from the warehouse in Minas Gerais.
const (
	OriginState  = StateMG
	OriginRegion = RegionSudeste
)

var stateRegions = map[State]Region{
	StateSP: RegionSudeste, StateRJ: RegionSudeste, StateES: RegionSudeste, StateMG: RegionSudeste,
	StatePR: RegionSul, StateSC: RegionSul, StateRS: RegionSul,
	StateDF: RegionCentroOeste, StateGO: RegionCentroOeste, StateMT: RegionCentroOeste, StateMS: RegionCentroOeste,
	StateBA: RegionNordeste, StateSE: RegionNordeste, StatePE: RegionNordeste, StateAL: RegionNordeste,
	StatePB: RegionNordeste, StateRN: RegionNordeste, StateCE: RegionNordeste, StatePI: RegionNordeste,
	StateMA: RegionNordeste,
	StatePA: RegionNorte, StateAM: RegionNorte, StateTO: RegionNorte, StateAC: RegionNorte,
	StateAP: RegionNorte, StateRO: RegionNorte, StateRR: RegionNorte,
}

// RegionOf returns the macro-region of a state.
func RegionOf(s State) (Region, error) {
	r, ok := stateRegions[s]
	if !ok {
		return "", fmt.Errorf("unknown state %q", s)
	}
	return r, nil
}

// TierFor classifies a destination state. Sul and centro-oeste count as
// regional because they border the origin region.
func TierFor(s State) (Tier, error) {
	if s == OriginState {
		return TierLocal, nil
	}
	region, err := RegionOf(s)
	if err != nil {
		return "", err
	}
	switch region {
	case OriginRegion, RegionSul, RegionCentroOeste:
		return TierRegional, nil
	case RegionNordeste, RegionNorte:
		return TierNacional, nil
	default:
		return "", fmt.Errorf("unclassified region %q", region)
	}
}

// Destination is the resolved classification of a CEP.
type Destination struct {
	PostalCode string
	State      State
	Region     Region
	Tier       Tier
}

// Lookup normalizes a CEP and resolves its state, region and distance tier.
func Lookup(postalCode string) (Destination, error) {
	cep, err := NormalizePostalCode(postalCode)
	if err != nil {
		return Destination{}, err
	}
	return classify(cep)
}

func classify(cep string) (Destination, error) {
	state := StateForPostalCode(cep)
	region, err := RegionOf(state)
	if err != nil {
		return Destination{}, err
	}
	tier, err := TierFor(state)
	if err != nil {
		return Destination{}, err
	}
	return Destination{
		PostalCode: cep,
		State:      state,
		Region:     region,
		Tier:       tier,
	}, nil
}
