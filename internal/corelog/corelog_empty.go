//go:build hexless

package corelog

// Log is a zero-cost stub with the same method set as the zerolog-backed
// Log, for the Teensy/TinyGo firmware target where zerolog's reflection-
// heavy console writer is unwanted (spec §10.1).
var Log = EmptyLog{}

// EmptyLog discards everything; every method returns itself so chains
// like Log.Debug().Str("leg", "0").Msg("dequeue") compile unchanged.
type EmptyLog struct{}

func (l EmptyLog) Debug() EmptyLog   { return l }
func (l EmptyLog) Error() EmptyLog   { return l }
func (l EmptyLog) Warning() EmptyLog { return l }
func (l EmptyLog) Warn() EmptyLog    { return l }
func (l EmptyLog) Info() EmptyLog    { return l }

func (l EmptyLog) Msg(string) EmptyLog { return l }
func (l EmptyLog) Err(error) EmptyLog  { return l }

func (l EmptyLog) Int(string, int) EmptyLog       { return l }
func (l EmptyLog) Str(string, string) EmptyLog    { return l }
func (l EmptyLog) Float(string, float64) EmptyLog { return l }

func (l EmptyLog) Ints(string, []int) EmptyLog       { return l }
func (l EmptyLog) Strs(string, []string) EmptyLog    { return l }
func (l EmptyLog) Floats(string, []float64) EmptyLog { return l }
