package timezone

import "time"

var Location *time.Location

func init() {
	var err error
	Location, err = time.LoadLocation("Europe/Athens")
	if err != nil {
		panic(err)
	}
}

// force the timezone to Athens because the scraped sites all publish
// dates in Greek local time; a server deployed in another zone would
// otherwise shift calendar-date defaults by a day
func Now() time.Time {
	return time.Now().In(Location)
}
