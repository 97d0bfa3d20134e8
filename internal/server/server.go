package server

// Server joins the HTTP servers of the individual resources.
type Server struct {
	CarrierServer
	NegotiationServer
}

func NewServer(
	carrierServer CarrierServer,
	negotiationServer NegotiationServer,
) Server {
	return Server{
		CarrierServer:     carrierServer,
		NegotiationServer: negotiationServer,
	}
}
