package datemath

// DateFormatISO is the wire format for resolved due dates.
const DateFormatISO = "2006-01-02"
