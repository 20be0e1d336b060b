package dnsutil

const (
	UDPNetwork = "udp" // A const here avoids pernickety case errors in Dial strings

	MaxUDPSize uint16 = 1232 // Generally suggested as universally safe in edns0
)
