package api

import (
	"encoding/json"
	"net/netip"
	"sort"

	"github.com/juju/errors"
	"github.com/qri-io/jsonschema"

	"github.com/2ip-api/twoip/twoiplib"
)

var resolveRequestJSONSchema = func() *jsonschema.Schema {
	data := `{
        "type": "object",
        "required": [
            "ips"
        ],
        "additionalProperties": false,
        "properties": {
            "ips": {
                "type": "array",
                "minItems": 1,
                "items": {
                    "anyOf": [
                        {
                            "type": "string",
                            "format": "ipv4",
                            "minLength": 7,
                            "maxLength": 15
                        },
                        {
                            "type": "string",
                            "format": "ipv6",
                            "minLength": 2,
                            "maxLength": 39
                        }
                    ]
                }
            }
        }
    }`

	rv := &jsonschema.Schema{}
	if err := json.Unmarshal([]byte(data), rv); err != nil {
		panic(err)
	}

	return rv
}()

type ipResolveRequestStruct struct {
	Ips []netip.Addr
}

func (req *ipResolveRequestStruct) UnmarshalJSON(text []byte) error {
	raw := struct {
		Ips []string `json:"ips"`
	}{}
	if err := json.Unmarshal(text, &raw); err != nil {
		return err
	}

	req.Ips = make([]netip.Addr, 0, len(raw.Ips))

	for _, v := range raw.Ips {
		parsed, err := netip.ParseAddr(v)
		if err != nil {
			return errors.Errorf("Cannot parse %s as IP", v)
		}

		req.Ips = append(req.Ips, parsed.Unmap())
	}

	return nil
}

type geoResolveItemStruct struct {
	Result twoiplib.GeoResult `json:"result"`
}

type providerResolveItemStruct struct {
	Result twoiplib.ProviderResult `json:"result"`
}

type geoResolveResponseStruct struct {
	Results map[string]twoiplib.GeoResult `json:"results"`
}

func (gr *geoResolveResponseStruct) Build(results twoiplib.GeoResults) {
	gr.Results = results.ToMap()
}

type providerResolveResponseStruct struct {
	Results map[string]twoiplib.ProviderResult `json:"results"`
}

func (pr *providerResolveResponseStruct) Build(results twoiplib.ProviderResults) {
	pr.Results = results.ToMap()
}

type usageStatsResponseStruct struct {
	Results []*twoiplib.UsageStats `json:"results"`
}

func (us *usageStatsResponseStruct) Build(stats map[twoiplib.LookupKind]*twoiplib.UsageStats) {
	us.Results = make([]*twoiplib.UsageStats, 0, len(stats))

	for _, v := range stats {
		us.Results = append(us.Results, v)
	}

	sort.Sort(us)
}

func (us *usageStatsResponseStruct) Len() int {
	return len(us.Results)
}

func (us *usageStatsResponseStruct) Swap(i, j int) {
	us.Results[i], us.Results[j] = us.Results[j], us.Results[i]
}

func (us *usageStatsResponseStruct) Less(i, j int) bool {
	return us.Results[i].Kind < us.Results[j].Kind
}
