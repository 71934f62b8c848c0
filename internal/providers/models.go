package providers

// Payload fields are pointers so that a key missing from the upstream
// document can be told apart from a zero value.

type Condition struct {
	Description *string `json:"description"`
	Icon        *string `json:"icon"`
}

type MainReadings struct {
	Temp      *float64 `json:"temp"`
	FeelsLike *float64 `json:"feels_like"`
	Humidity  *float64 `json:"humidity"`
	Pressure  *float64 `json:"pressure"`
}

type Wind struct {
	Speed *float64 `json:"speed"`
	Deg   *float64 `json:"deg"`
}

type CurrentWeatherPayload struct {
	Name *string `json:"name"`
	Sys  *struct {
		Country *string `json:"country"`
	} `json:"sys"`
	Main    *MainReadings `json:"main"`
	Weather []Condition   `json:"weather"`
	Wind    *Wind         `json:"wind"`
}

type ForecastItem struct {
	DtTxt   *string       `json:"dt_txt"`
	Main    *MainReadings `json:"main"`
	Weather []Condition   `json:"weather"`
	Wind    *Wind         `json:"wind"`
}

type ForecastPayload struct {
	City *struct {
		Name    *string `json:"name"`
		Country *string `json:"country"`
	} `json:"city"`
	List []ForecastItem `json:"list"`
}
