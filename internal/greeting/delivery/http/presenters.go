package http

import (
	"time"

	"momentum-tab/internal/greeting"
)

type clockResp struct {
	Time        string    `json:"time"`
	Greeting    string    `json:"greeting"`
	Now         time.Time `json:"now"`
	NextChangeS float64   `json:"next_change_s"`
}

func newClockResp(o greeting.Output) clockResp {
	return clockResp{
		Time:        o.Time,
		Greeting:    o.Greeting,
		Now:         o.Now,
		NextChangeS: o.NextChange.Seconds(),
	}
}
