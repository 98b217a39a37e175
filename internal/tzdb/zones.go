package tzdb

// Probe lists for offset matching. Most deployments of this exporter are in
// North America, so those zones are tried first; the common list covers one
// representative zone per populated offset; the exhaustive list fills in the
// fractional and less common offsets.

var regionalZones = []string{
	"America/New_York",
	"America/Chicago",
	"America/Denver",
	"America/Phoenix",
	"America/Los_Angeles",
	"America/Anchorage",
	"Pacific/Honolulu",
	"America/Toronto",
	"America/Vancouver",
	"America/Edmonton",
	"America/Winnipeg",
	"America/Halifax",
	"America/St_Johns",
	"America/Mexico_City",
	"America/Puerto_Rico",
}

var commonZones = []string{
	"UTC",
	"Europe/London",
	"Europe/Dublin",
	"Europe/Lisbon",
	"Europe/Paris",
	"Europe/Berlin",
	"Europe/Madrid",
	"Europe/Rome",
	"Europe/Amsterdam",
	"Europe/Zurich",
	"Europe/Vienna",
	"Europe/Stockholm",
	"Europe/Oslo",
	"Europe/Copenhagen",
	"Europe/Warsaw",
	"Europe/Prague",
	"Europe/Athens",
	"Europe/Helsinki",
	"Europe/Kyiv",
	"Europe/Istanbul",
	"Europe/Moscow",
	"Africa/Cairo",
	"Africa/Johannesburg",
	"Africa/Lagos",
	"Africa/Nairobi",
	"Asia/Dubai",
	"Asia/Karachi",
	"Asia/Kolkata",
	"Asia/Dhaka",
	"Asia/Bangkok",
	"Asia/Singapore",
	"Asia/Hong_Kong",
	"Asia/Shanghai",
	"Asia/Taipei",
	"Asia/Seoul",
	"Asia/Tokyo",
	"Australia/Perth",
	"Australia/Adelaide",
	"Australia/Brisbane",
	"Australia/Sydney",
	"Australia/Melbourne",
	"Pacific/Auckland",
	"Pacific/Fiji",
	"America/Sao_Paulo",
	"America/Argentina/Buenos_Aires",
	"America/Santiago",
	"America/Bogota",
	"America/Lima",
	"America/Caracas",
	"America/Guatemala",
}

var allZones = []string{
	"Pacific/Midway",
	"Pacific/Pago_Pago",
	"Pacific/Marquesas",
	"Pacific/Gambier",
	"Pacific/Tahiti",
	"Pacific/Pitcairn",
	"America/Adak",
	"America/Juneau",
	"America/Tijuana",
	"America/Boise",
	"America/Regina",
	"America/Monterrey",
	"America/Costa_Rica",
	"America/Panama",
	"America/Havana",
	"America/Santo_Domingo",
	"America/La_Paz",
	"America/Asuncion",
	"America/Montevideo",
	"America/Cayenne",
	"America/Noronha",
	"Atlantic/South_Georgia",
	"Atlantic/Cape_Verde",
	"Atlantic/Azores",
	"Atlantic/Reykjavik",
	"Atlantic/Canary",
	"Africa/Casablanca",
	"Africa/Algiers",
	"Africa/Tunis",
	"Africa/Tripoli",
	"Africa/Accra",
	"Africa/Addis_Ababa",
	"Africa/Khartoum",
	"Africa/Windhoek",
	"Europe/Belgrade",
	"Europe/Brussels",
	"Europe/Bucharest",
	"Europe/Budapest",
	"Europe/Riga",
	"Europe/Sofia",
	"Europe/Tallinn",
	"Europe/Vilnius",
	"Europe/Minsk",
	"Asia/Jerusalem",
	"Asia/Beirut",
	"Asia/Amman",
	"Asia/Baghdad",
	"Asia/Riyadh",
	"Asia/Tehran",
	"Asia/Baku",
	"Asia/Tbilisi",
	"Asia/Yerevan",
	"Asia/Kabul",
	"Asia/Tashkent",
	"Asia/Almaty",
	"Asia/Colombo",
	"Asia/Kathmandu",
	"Asia/Yangon",
	"Asia/Jakarta",
	"Asia/Kuala_Lumpur",
	"Asia/Manila",
	"Asia/Makassar",
	"Asia/Irkutsk",
	"Asia/Ulaanbaatar",
	"Asia/Pyongyang",
	"Asia/Yakutsk",
	"Asia/Vladivostok",
	"Asia/Sakhalin",
	"Asia/Kamchatka",
	"Australia/Darwin",
	"Australia/Eucla",
	"Australia/Lord_Howe",
	"Australia/Hobart",
	"Pacific/Guam",
	"Pacific/Port_Moresby",
	"Pacific/Guadalcanal",
	"Pacific/Norfolk",
	"Pacific/Chatham",
	"Pacific/Tongatapu",
	"Pacific/Apia",
	"Pacific/Kiritimati",
}
