package physics

import "math"

// SpecificGasConstantDryAir is R_d in J/(kg·K).
const SpecificGasConstantDryAir = 287.05

// SaturationVaporPressure returns the saturation vapor pressure in Pa for a
// temperature in °C (Magnus-Tetens approximation).
func SaturationVaporPressure(tempC float64) float64 {
	return 611.2 * math.Exp(17.67*tempC/(tempC+243.5))
}

// AirDensity returns moist-air density in kg/m³ from temperature (°C), barometric
// pressure (hPa) and relative humidity (%). Inputs are not range-checked.
func AirDensity(tempC, pressureHPa, humidityPct float64) float64 {
	tempK := tempC + 273.15
	p := pressureHPa * 100

	e := (humidityPct / 100) * SaturationVaporPressure(tempC)

	return (p / (SpecificGasConstantDryAir * tempK)) * (1 - 0.378*e/p)
}
