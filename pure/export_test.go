package pure

var NumCounters = numCounters
