package model

// WeatherConditions captures the ambient conditions for a flight. Pure
// input; the engine never writes to it.
type WeatherConditions struct {
	Temperature   float64 // °C at the pad
	Pressure      float64 // Pa at the pad
	Humidity      float64 // %, informational for now
	WindSpeed     float64 // m/s
	WindDirection float64 // degrees, direction the wind blows toward
}

// DefaultWeather returns a calm standard day: 20°C, sea-level pressure,
// 50% humidity, 5 m/s wind.
func DefaultWeather() WeatherConditions {
	return WeatherConditions{
		Temperature:   20,
		Pressure:      101325,
		Humidity:      50,
		WindSpeed:     5,
		WindDirection: 0,
	}
}
