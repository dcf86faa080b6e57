package client

import (
	"sort"
	"strings"

	"github.com/spf13/pflag"
)

// Kind identifies the primary command of an invocation.
type Kind int

const (
	KindLatest Kind = iota + 1
	KindMinimum
	KindMaximum
	KindUnknown
	KindLocations
	KindAllLocations
	KindLocationEvents
	KindLocationClass
	KindSummary
	KindAll
	KindConfigSensor
	KindDeleteSensor
	KindDeleteClimeMet
	KindDeleteUnseen
	KindSensorInfo
)

// Command is one selected primary command with its parsed argument, plus
// the clear-unknown modifier. Only the argument field matching Kind is set.
type Command struct {
	Kind Kind

	Location LocationFilter // KindLocationEvents
	Class    string         // KindLocationClass
	Sensor   SensorConfig   // KindConfigSensor
	SensorID string         // KindDeleteSensor

	// ClearUnknown clears unknown events after the primary command succeeds.
	ClearUnknown bool
}

func (k Kind) String() string {
	for _, p := range primaryFlags {
		if p.kind == k {
			return p.name
		}
	}
	return "unknown"
}

// primaryFlag describes one mutually exclusive command flag.
type primaryFlag struct {
	name      string
	shorthand string
	kind      Kind
	// metavar is non-empty for flags that take a value.
	metavar string
	usage   string
}

var primaryFlags = []primaryFlag{
	{name: "latest", shorthand: "l", kind: KindLatest, usage: "Get latest events"},
	{name: "minimum", shorthand: "m", kind: KindMinimum, usage: "Get minimum events"},
	{name: "maximum", shorthand: "M", kind: KindMaximum, usage: "Get maximum events"},
	{name: "unknown", shorthand: "u", kind: KindUnknown, usage: "Get unknown events"},
	{name: "locations", shorthand: "L", kind: KindLocations, usage: "Get location list"},
	{name: "all-locations", shorthand: "A", kind: KindAllLocations, usage: "Get all known locations"},
	{name: "location-events", shorthand: "E", kind: KindLocationEvents, metavar: "LOCATION[:MEASTYPE]", usage: "Get events for a location"},
	{name: "location-class", shorthand: "C", kind: KindLocationClass, metavar: "CLASS", usage: "Get location class events, e.g. Outside"},
	{name: "summary", shorthand: "s", kind: KindSummary, usage: "Get summary of events"},
	{name: "all", shorthand: "a", kind: KindAll, usage: "Get all cached events"},
	{name: "config-sensor", shorthand: "f", kind: KindConfigSensor, metavar: "ID=LOCATION", usage: "Configure a sensor"},
	{name: "delete-sensor", shorthand: "d", kind: KindDeleteSensor, metavar: "ID", usage: "Delete a sensor"},
	{name: "delete-climemet", shorthand: "D", kind: KindDeleteClimeMet, usage: "Delete ClimeMet sensors"},
	{name: "delete-unseen", shorthand: "U", kind: KindDeleteUnseen, usage: "Delete sensors for which no events have been seen"},
	{name: "sensor-info", shorthand: "i", kind: KindSensorInfo, usage: "Get sensor info for all sensors"},
}

const clearUnknownFlag = "clear-unknown"

func primaryFlagNames() []string {
	names := make([]string, len(primaryFlags))
	for i, p := range primaryFlags {
		names[i] = p.name
	}
	return names
}

// registerCommandFlags adds the primary command flags and the clear-unknown
// modifier to fs.
func registerCommandFlags(fs *pflag.FlagSet) {
	for _, p := range primaryFlags {
		if p.metavar != "" {
			fs.StringP(p.name, p.shorthand, "", p.usage+"; "+p.metavar)
			continue
		}
		fs.BoolP(p.name, p.shorthand, false, p.usage)
	}
	fs.BoolP(clearUnknownFlag, "c", false, "Clear unknown events (may be combined with any command)")
}

// SelectCommand builds the Command chosen on fs. Exactly one primary flag
// must be set. Flag arguments are parsed here, so malformed input is
// rejected before any connection is made.
func SelectCommand(fs *pflag.FlagSet) (Command, error) {
	byName := make(map[string]primaryFlag, len(primaryFlags))
	for _, p := range primaryFlags {
		byName[p.name] = p
	}

	var chosen []primaryFlag
	fs.Visit(func(f *pflag.Flag) {
		p, ok := byName[f.Name]
		if !ok {
			return
		}
		// --latest=false is not a selection. Alone it ends in the "required"
		// error below; cobra's exclusive group already rejects it next to
		// another command flag.
		if p.metavar == "" && f.Value.String() != "true" {
			return
		}
		chosen = append(chosen, p)
	})

	switch len(chosen) {
	case 0:
		return Command{}, invalidArgument("one of --%s is required", strings.Join(primaryFlagNames(), ", --"))
	case 1:
	default:
		names := make([]string, len(chosen))
		for i, p := range chosen {
			names[i] = "--" + p.name
		}
		sort.Strings(names)
		return Command{}, invalidArgument("flags %s are mutually exclusive", strings.Join(names, ", "))
	}

	p := chosen[0]
	cmd := Command{Kind: p.kind}
	if clearUnknown, err := fs.GetBool(clearUnknownFlag); err == nil {
		cmd.ClearUnknown = clearUnknown
	}
	if p.metavar == "" {
		return cmd, nil
	}

	arg, err := fs.GetString(p.name)
	if err != nil {
		return Command{}, err
	}
	switch p.kind {
	case KindLocationEvents:
		cmd.Location = ParseLocationFilter(arg)
	case KindLocationClass:
		if arg == "" {
			err = invalidArgument("location class must be non empty")
		}
		cmd.Class = arg
	case KindConfigSensor:
		cmd.Sensor, err = ParseSensorConfig(arg)
	case KindDeleteSensor:
		if arg == "" {
			err = invalidArgument("sensor id must be non empty")
		}
		cmd.SensorID = arg
	}
	if err != nil {
		return Command{}, err
	}
	return cmd, nil
}
