package service

import (
	"math"
	"time"

	"ulascansenturk/city-weather-service/internal/models"
)

const MaxForecastDays = 5

type dayBucket struct {
	date        string
	temps       []float64
	icon        string
	description string
}

// BucketForecast groups samples by UTC calendar day in first-seen order and
// summarizes at most MaxForecastDays days. Icon and description come from the
// first sample of each day.
func BucketForecast(samples []models.ForecastSample) []models.ForecastDay {
	var buckets []*dayBucket
	index := make(map[string]*dayBucket)

	for _, sample := range samples {
		date := time.Unix(sample.EpochSec, 0).UTC().Format(time.DateOnly)

		bucket, ok := index[date]
		if !ok {
			if len(buckets) == MaxForecastDays {
				continue
			}
			bucket = &dayBucket{date: date, icon: sample.Icon, description: sample.Description}
			index[date] = bucket
			buckets = append(buckets, bucket)
		}
		bucket.temps = append(bucket.temps, sample.Temp)
	}

	days := make([]models.ForecastDay, 0, len(buckets))
	for _, bucket := range buckets {
		days = append(days, bucket.summarize())
	}
	return days
}

func (b *dayBucket) summarize() models.ForecastDay {
	sum, minTemp, maxTemp := 0.0, math.Inf(1), math.Inf(-1)
	for _, t := range b.temps {
		sum += t
		minTemp = math.Min(minTemp, t)
		maxTemp = math.Max(maxTemp, t)
	}

	return models.ForecastDay{
		Date:        b.date,
		AvgTemp:     roundHalfUp(sum / float64(len(b.temps))),
		MinTemp:     minTemp,
		MaxTemp:     maxTemp,
		Icon:        b.icon,
		Description: b.description,
	}
}

// roundHalfUp rounds .5 toward positive infinity, so -2.5 becomes -2.
func roundHalfUp(x float64) float64 {
	return math.Floor(x + 0.5)
}
