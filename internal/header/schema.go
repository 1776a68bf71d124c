// Package header implements the SEG-Y field schema (§4.3) and the header
// I/O façade (§4.4): the tables mapping a 1-based byte offset within a
// trace or binary header to its field width, the get/set primitives built
// on top of them, and the read/write operations for the textual, binary,
// and trace headers.
package header

import (
	"sort"

	"github.com/mansfield-segy/segy/internal/ebcdic"
	"github.com/mansfield-segy/segy/internal/segyerr"
)

const (
	TextHeaderSize   = 3200
	BinaryHeaderSize = 400
	TraceHeaderSize  = 240
)

// fieldEntry is one row of a (offset, width) table, checked by binary
// search rather than stored as a sparse array indexed by offset -- the
// representation spec.md's design notes recommend, since offsets span a
// 240..400 byte range but only a few dozen are ever recognized.
type fieldEntry struct {
	offset int
	width  int
}

// traceFields are the canonical SEG-Y rev-1 trace header field locations
// (1-based byte offset within the 240-byte trace header).
var traceFields = []fieldEntry{
	{1, 4},   // TRACE_SEQUENCE_LINE
	{5, 4},   // TRACE_SEQUENCE_FILE
	{9, 4},   // FieldRecord
	{13, 4},  // TraceNumber
	{17, 4},  // EnergySourcePoint
	{21, 4},  // CDP
	{25, 4},  // CDP_TRACE
	{29, 2},  // TraceIdentificationCode
	{31, 2},  // NSummedTraces
	{33, 2},  // NStackedTraces
	{35, 2},  // DataUse
	{37, 4},  // offset
	{41, 4},  // ReceiverGroupElevation
	{45, 4},  // SourceSurfaceElevation
	{49, 4},  // SourceDepth
	{53, 4},  // ReceiverDatumElevation
	{57, 4},  // SourceDatumElevation
	{61, 4},  // SourceWaterDepth
	{65, 4},  // GroupWaterDepth
	{69, 2},  // ElevationScalar
	{71, 2},  // SourceGroupScalar
	{73, 4},  // SourceX
	{77, 4},  // SourceY
	{81, 4},  // GroupX
	{85, 4},  // GroupY
	{89, 2},  // CoordinateUnits
	{91, 2},  // WeatheringVelocity
	{93, 2},  // SubWeatheringVelocity
	{95, 2},  // SourceUpholeTime
	{97, 2},  // GroupUpholeTime
	{99, 2},  // SourceStaticCorrection
	{101, 2}, // GroupStaticCorrection
	{103, 2}, // TotalStaticApplied
	{105, 2}, // LagTimeA
	{107, 2}, // LagTimeB
	{109, 2}, // DelayRecordingTime
	{111, 2}, // MuteTimeStart
	{113, 2}, // MuteTimeEND
	{115, 2}, // TRACE_SAMPLE_COUNT
	{117, 2}, // TRACE_SAMPLE_INTERVAL
	{119, 2}, // GainType
	{121, 2}, // InstrumentGainConstant
	{123, 2}, // InstrumentInitialGain
	{125, 2}, // Correlated
	{127, 2}, // SweepFrequencyStart
	{129, 2}, // SweepFrequencyEnd
	{131, 2}, // SweepLength
	{133, 2}, // SweepType
	{135, 2}, // SweepTraceTaperLengthStart
	{137, 2}, // SweepTraceTaperLengthEnd
	{139, 2}, // TaperType
	{141, 2}, // AliasFilterFrequency
	{143, 2}, // AliasFilterSlope
	{145, 2}, // NotchFilterFrequency
	{147, 2}, // NotchFilterSlope
	{149, 2}, // LowCutFrequency
	{151, 2}, // HighCutFrequency
	{153, 2}, // LowCutSlope
	{155, 2}, // HighCutSlope
	{157, 2}, // YearDataRecorded
	{159, 2}, // DayOfYear
	{161, 2}, // HourOfDay
	{163, 2}, // MinuteOfHour
	{165, 2}, // SecondOfMinute
	{167, 2}, // TimeBaseCode
	{169, 2}, // TraceWeightingFactor
	{171, 2}, // GeophoneGroupNumberRoll1
	{173, 2}, // GeophoneGroupNumberFirstTraceOrigField
	{175, 2}, // GeophoneGroupNumberLastTraceOrigField
	{177, 2}, // GapSize
	{179, 2}, // OverTravel
	{181, 4}, // CDP_X
	{185, 4}, // CDP_Y
	{189, 4}, // INLINE_3D
	{193, 4}, // CROSSLINE_3D
	{197, 4}, // ShotPoint
	{201, 2}, // ShotPointScalar
	{203, 2}, // TraceValueMeasurementUnit
	{205, 4}, // TransductionConstantMantissa
	{209, 2}, // TransductionConstantPower
	{211, 2}, // TransductionUnit
	{213, 2}, // TraceIdentifier
	{215, 2}, // ScalarTraceHeader
	{217, 2}, // SourceType
	{219, 4}, // SourceEnergyDirectionMantissa
	{223, 2}, // SourceEnergyDirectionExponent
	{225, 4}, // SourceMeasurementMantissa
	{229, 2}, // SourceMeasurementExponent
	{231, 2}, // SourceMeasurementUnit
	{233, 4}, // UnassignedInt1
	{237, 4}, // UnassignedInt2
}

// binaryFields are the canonical SEG-Y rev-1 binary header field
// locations, given by the public offset measured from the start of the
// *textual* header (3201..3600), matching spec.md §4.3/§6.
var binaryFields = []fieldEntry{
	{3201, 4}, // Job
	{3205, 4}, // LineNumber
	{3209, 4}, // ReelNumber
	{3213, 2}, // NTraces
	{3215, 2}, // NAuxTraces
	{3217, 2}, // Interval (sample interval)
	{3219, 2}, // IntervalOriginal
	{3221, 2}, // Samples (samples per trace)
	{3223, 2}, // SamplesOriginal
	{3225, 2}, // Format (sample format)
	{3227, 2}, // EnsembleFold
	{3229, 2}, // SortingCode
	{3231, 2}, // VerticalSum
	{3233, 2}, // SweepFrequencyStart
	{3235, 2}, // SweepFrequencyEnd
	{3237, 2}, // SweepLength
	{3239, 2}, // Sweep
	{3241, 2}, // SweepChannel
	{3243, 2}, // SweepTaperStart
	{3245, 2}, // SweepTaperEnd
	{3247, 2}, // Taper
	{3249, 2}, // CorrelatedTraces
	{3251, 2}, // BinaryGainRecovery
	{3253, 2}, // AmplitudeRecovery
	{3255, 2}, // MeasurementSystem
	{3257, 2}, // ImpulseSignalPolarity
	{3259, 2}, // VibratoryPolarity
	{3505, 2}, // ExtendedHeaders (extended textual header count)
}

func init() {
	sort.Slice(traceFields, func(i, j int) bool { return traceFields[i].offset < traceFields[j].offset })
	sort.Slice(binaryFields, func(i, j int) bool { return binaryFields[i].offset < binaryFields[j].offset })
}

// widthAt returns the field width at offset in table, or 0 if unrecognized.
func widthAt(table []fieldEntry, offset int) int {
	i := sort.Search(len(table), func(i int) bool { return table[i].offset >= offset })
	if i < len(table) && table[i].offset == offset {
		return table[i].width
	}
	return 0
}

// TraceFieldWidth returns the width, in bytes, of the trace-header field
// at the given 1-based offset, or 0 if the offset is unrecognized.
func TraceFieldWidth(offset int) int { return widthAt(traceFields, offset) }

// BinaryFieldWidth returns the width, in bytes, of the binary-header field
// at the given 1-based offset (measured from the start of the textual
// header, i.e. 3201..3600), or 0 if the offset is unrecognized.
func BinaryFieldWidth(offset int) int { return widthAt(binaryFields, offset) }

// GetField reads the trace-header field at offset from buf, sign-extending
// it to int32. It fails with InvalidField if the offset is unrecognized or
// out of range for a 240-byte trace header.
func GetField(buf []byte, offset int) (int32, error) {
	if offset < 1 || offset > TraceHeaderSize {
		return 0, segyerr.New(segyerr.InvalidField, nil, "trace field offset %d out of range", offset)
	}
	width := TraceFieldWidth(offset)
	return getField(buf, offset, width)
}

// SetField writes val to the trace-header field at offset in buf.
func SetField(buf []byte, offset int, val int32) error {
	if offset < 1 || offset > TraceHeaderSize {
		return segyerr.New(segyerr.InvalidField, nil, "trace field offset %d out of range", offset)
	}
	width := TraceFieldWidth(offset)
	return setField(buf, offset, width, val)
}

// GetBinaryField reads the binary-header field at offset (3201..3600) from
// buf, which must be the 400-byte binary header buffer (not the whole
// file). The public offset is translated to a buffer-relative one by
// subtracting TextHeaderSize.
func GetBinaryField(buf []byte, offset int) (int32, error) {
	rel := offset - TextHeaderSize
	if rel < 1 || rel > BinaryHeaderSize {
		return 0, segyerr.New(segyerr.InvalidField, nil, "binary field offset %d out of range", offset)
	}
	width := BinaryFieldWidth(offset)
	return getField(buf, rel, width)
}

// SetBinaryField writes val to the binary-header field at offset.
func SetBinaryField(buf []byte, offset int, val int32) error {
	rel := offset - TextHeaderSize
	if rel < 1 || rel > BinaryHeaderSize {
		return segyerr.New(segyerr.InvalidField, nil, "binary field offset %d out of range", offset)
	}
	width := BinaryFieldWidth(offset)
	return setField(buf, rel, width, val)
}

func getField(buf []byte, offset, width int) (int32, error) {
	if width == 0 {
		return 0, segyerr.New(segyerr.InvalidField, nil, "offset %d does not name a recognized field", offset)
	}
	start := offset - 1
	switch width {
	case 2:
		return ebcdic.GetInt16(buf[start : start+2]), nil
	case 4:
		return ebcdic.GetInt32(buf[start : start+4]), nil
	default:
		return 0, segyerr.New(segyerr.InvalidField, nil, "unsupported field width %d", width)
	}
}

func setField(buf []byte, offset, width int, val int32) error {
	if width == 0 {
		return segyerr.New(segyerr.InvalidField, nil, "offset %d does not name a recognized field", offset)
	}
	start := offset - 1
	switch width {
	case 2:
		ebcdic.PutInt16(buf[start:start+2], val)
	case 4:
		ebcdic.PutInt32(buf[start:start+4], val)
	default:
		return segyerr.New(segyerr.InvalidField, nil, "unsupported field width %d", width)
	}
	return nil
}
