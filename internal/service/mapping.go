package service

import (
	"fmt"

	"ulascansenturk/weather-dashboard/internal/providers"
)

func mapCurrentWeather(p *providers.CurrentWeatherPayload) (CurrentWeather, error) {
	f := &fieldReader{}

	out := CurrentWeather{
		City: f.str("name", p.Name),
	}

	if p.Sys == nil {
		f.miss("sys")
	} else {
		out.Country = f.str("sys.country", p.Sys.Country)
	}

	if p.Main == nil {
		f.miss("main")
	} else {
		out.Temperature = f.float("main.temp", p.Main.Temp)
		out.FeelsLike = f.float("main.feels_like", p.Main.FeelsLike)
		out.Humidity = f.float("main.humidity", p.Main.Humidity)
		out.Pressure = f.float("main.pressure", p.Main.Pressure)
	}

	out.Description, out.Icon = readCondition(f, "weather", p.Weather)

	if p.Wind == nil {
		f.miss("wind")
	} else {
		out.WindSpeed = f.float("wind.speed", p.Wind.Speed)
		// wind.deg is optional, calm readings omit it.
		if p.Wind.Deg != nil {
			out.WindDirection = *p.Wind.Deg
		}
	}

	if err := f.err(); err != nil {
		return CurrentWeather{}, err
	}
	return out, nil
}

func mapForecast(p *providers.ForecastPayload) (Forecast, error) {
	f := &fieldReader{}

	var out Forecast
	if p.City == nil {
		f.miss("city")
	} else {
		out.City = f.str("city.name", p.City.Name)
		out.Country = f.str("city.country", p.City.Country)
	}

	if p.List == nil {
		f.miss("list")
	}

	out.Forecasts = make([]ForecastEntry, 0, len(p.List))
	for i, item := range p.List {
		prefix := fmt.Sprintf("list[%d]", i)

		entry := ForecastEntry{
			Date: f.str(prefix+".dt_txt", item.DtTxt),
		}

		if item.Main == nil {
			f.miss(prefix + ".main")
		} else {
			entry.Temperature = f.float(prefix+".main.temp", item.Main.Temp)
			entry.Humidity = f.float(prefix+".main.humidity", item.Main.Humidity)
		}

		entry.Description, entry.Icon = readCondition(f, prefix+".weather", item.Weather)

		if item.Wind == nil {
			f.miss(prefix + ".wind")
		} else {
			entry.WindSpeed = f.float(prefix+".wind.speed", item.Wind.Speed)
		}

		out.Forecasts = append(out.Forecasts, entry)
	}

	if err := f.err(); err != nil {
		return Forecast{}, err
	}
	return out, nil
}

// readCondition uses the first weather condition only.
func readCondition(f *fieldReader, prefix string, conditions []providers.Condition) (string, string) {
	if len(conditions) == 0 {
		f.miss(prefix + "[0]")
		return "", ""
	}

	first := conditions[0]
	return f.str(prefix+"[0].description", first.Description), f.str(prefix+"[0].icon", first.Icon)
}
