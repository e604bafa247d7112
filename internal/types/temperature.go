package types

type Temperature struct {
	Celsius    float64
	Fahrenheit float64
}

func NewTemperatureFromFahrenheit(fahrenheit float64) Temperature {
	var celsius = (fahrenheit - 32) * 5 / 9
	return Temperature{
		Celsius:    celsius,
		Fahrenheit: fahrenheit,
	}
}

func NewTemperatureFromCelsius(celsius float64) Temperature {
	var fahrenheit = celsius*1.8 + 32
	return Temperature{
		Celsius:    celsius,
		Fahrenheit: fahrenheit,
	}
}
