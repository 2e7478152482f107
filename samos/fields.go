// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package samos

import "regexp"

// FieldSpec describes one standard SAMOS observation code.
type FieldSpec struct {
	Description string
	Units       string
}

// Field codes are two uppercase letters optionally followed by one digit,
// e.g. AT, TW, CS8.
var fieldCodeRegexp = regexp.MustCompile(`^[A-Z]{2}[0-9]?$`)

var samosFields = map[string]FieldSpec{
	"AT": {Description: "Air Temperature", Units: "C"},
	"AX": {Description: "Auxiliary Air Temperature", Units: "C"},
	"BC": {Description: "Barometric Pressure Temperature", Units: "C"},
	"BP": {Description: "Barometric Pressure", Units: "mbar"},
	"CR": {Description: "Vessel Course Over Ground", Units: "deg"},
	"DP": {Description: "Dew Point", Units: "C"},
	"FL": {Description: "Fluorometer", Units: "μg/l"},
	"GY": {Description: "Vessel Heading", Units: "deg"},
	"LA": {Description: "Latitude", Units: "ddeg"},
	"LB": {Description: "LWR Body Temperature", Units: "K"},
	"LD": {Description: "LWR Dome Temperature", Units: "K"},
	"LO": {Description: "Longitude", Units: "ddeg"},
	"LT": {Description: "LWR Thermopile", Units: "volts"},
	"LW": {Description: "Long Wave Radiation [LWR] from Pyrgeometer", Units: "W/m2 "},
	"OG": {Description: "Oxygen Consentration", Units: "mg/l"},
	"OS": {Description: "Oxygen Saturation", Units: "ml/l"},
	"OT": {Description: "Oxygen Temperature", Units: "C"},
	"OX": {Description: "Oxygen", Units: "ml/l"},
	"PH": {Description: "Alkalinity", Units: "pH"},
	"PR": {Description: "Precipitation", Units: "mm"},
	"PT": {Description: "Precipitation rate", Units: "mm/hr"},
	"RH": {Description: "Relative Humidity", Units: "%"},
	"RT": {Description: "Air Temperature", Units: "C"},
	"SA": {Description: "Salinity", Units: "PSU"},
	"SH": {Description: "Ashtech Heading", Units: "deg"},
	"SL": {Description: "Vessel Speed Over water", Units: "m/s"},
	"SM": {Description: "Ashtech Pitch", Units: "deg"},
	"SP": {Description: "Vessel Speed Over Ground", Units: "m/s"},
	"SR": {Description: "Ashtech Roll", Units: "deg"},
	"ST": {Description: "Sea Surface Temperature", Units: "C"},
	"SV": {Description: "Sound Velocity [Chen/Millero]", Units: "m/s"},
	"SW": {Description: "Short Wave Radiation [SWR] from Pyranometer", Units: "W/m2 "},
	"TB": {Description: "Turbidity", Units: "NTU"},
	"TC": {Description: "SBE21 Conductivity", Units: "mS/m"},
	"TI": {Description: "True Wind Direction; Direction wind is coming from", Units: "deg"},
	"TK": {Description: "True Wind Speed", Units: "m/s"},
	"TR": {Description: "Transmissometer", Units: "%"},
	"TT": {Description: "SBE21 Temperature", Units: "C"},
	"TW": {Description: "True Wind Speed", Units: "m/s"},
	"VH": {Description: "VRU Heave", Units: "m"},
	"VP": {Description: "VRU Pitch", Units: "deg"},
	"VR": {Description: "VRU Roll", Units: "deg"},
	"VX": {Description: "Vessel Trim", Units: "deg"},
	"VY": {Description: "Vessel List", Units: "deg"},
	"WD": {Description: "Wind Direction, Relative to bow;", Units: "deg"},
	"WS": {Description: "Wind Speed, Relative to vessel", Units: "m/s"},
	"WT": {Description: "Auxiliary Water Temperature", Units: "C"},
	"ZD": {Description: "GPS Date Time GMT", Units: "Seconds Since 00:00:00 01/01/1970"},
	"HM": {Description: "Hour, minute, second (hhmmss) time of reported spot or average observation in GMT", Units: ""},
	"YM": {Description: "Year, month, day (YYYYMMDD) of reported spot or average observation in GMT", Units: ""},
	"DT": {Description: "Date and time (YYYYMMDDhhmmss) of reported spot or average observation in GMT", Units: ""},
}

// IsKnownField reports whether code is a standard SAMOS field identifier:
// its two-letter prefix must exist in the registry and the full code must
// match the field code pattern.
func IsKnownField(code string) bool {
	if !fieldCodeRegexp.MatchString(code) {
		return false
	}
	_, ok := samosFields[code[:2]]

	return ok
}

// LookupField returns the specification registered for the two-letter
// prefix of code.
func LookupField(code string) (FieldSpec, bool) {
	if !IsKnownField(code) {
		return FieldSpec{}, false
	}
	spec := samosFields[code[:2]]

	return spec, true
}
