package downloadmgr

// DefaultProxyPrefix is the endpoint every download is routed through
const DefaultProxyPrefix = "https://download-prx.izziefinnegan.workers.dev/?url="

// Proxy rewrites remote urls so they are fetched through a proxy endpoint
type Proxy struct {
	// Prefix gets the remote url appended verbatim (it is not query escaped).
	// An empty prefix fetches urls directly
	Prefix string
}

// Rewrite returns the url that actually gets requested for u
func (p Proxy) Rewrite(u string) string {
	return p.Prefix + u
}
