package main

// Flag datasets served to clients. URLs are resolved by the web client
// against its own static asset tree, so only the paths matter here.

type flag struct {
	Name   string `json:"name"`
	URL    string `json:"url"`
	Region string `json:"region"`
}

const (
	modeWorld = "world"
	modeUS    = "us"
)

var worldFlags = []flag{
	{Name: "United States", URL: "/flags/us.svg", Region: "North America"},
	{Name: "Canada", URL: "/flags/ca.svg", Region: "North America"},
	{Name: "Mexico", URL: "/flags/mx.svg", Region: "North America"},
	{Name: "Cuba", URL: "/flags/cu.svg", Region: "North America"},
	{Name: "Jamaica", URL: "/flags/jm.svg", Region: "North America"},
	{Name: "Panama", URL: "/flags/pa.svg", Region: "North America"},
	{Name: "United Kingdom", URL: "/flags/gb.svg", Region: "Europe"},
	{Name: "France", URL: "/flags/fr.svg", Region: "Europe"},
	{Name: "Germany", URL: "/flags/de.svg", Region: "Europe"},
	{Name: "Italy", URL: "/flags/it.svg", Region: "Europe"},
	{Name: "Spain", URL: "/flags/es.svg", Region: "Europe"},
	{Name: "Portugal", URL: "/flags/pt.svg", Region: "Europe"},
	{Name: "Netherlands", URL: "/flags/nl.svg", Region: "Europe"},
	{Name: "Belgium", URL: "/flags/be.svg", Region: "Europe"},
	{Name: "Switzerland", URL: "/flags/ch.svg", Region: "Europe"},
	{Name: "Austria", URL: "/flags/at.svg", Region: "Europe"},
	{Name: "Sweden", URL: "/flags/se.svg", Region: "Europe"},
	{Name: "Norway", URL: "/flags/no.svg", Region: "Europe"},
	{Name: "Denmark", URL: "/flags/dk.svg", Region: "Europe"},
	{Name: "Finland", URL: "/flags/fi.svg", Region: "Europe"},
	{Name: "Iceland", URL: "/flags/is.svg", Region: "Europe"},
	{Name: "Ireland", URL: "/flags/ie.svg", Region: "Europe"},
	{Name: "Poland", URL: "/flags/pl.svg", Region: "Europe"},
	{Name: "Czechia", URL: "/flags/cz.svg", Region: "Europe"},
	{Name: "Hungary", URL: "/flags/hu.svg", Region: "Europe"},
	{Name: "Romania", URL: "/flags/ro.svg", Region: "Europe"},
	{Name: "Bulgaria", URL: "/flags/bg.svg", Region: "Europe"},
	{Name: "Greece", URL: "/flags/gr.svg", Region: "Europe"},
	{Name: "Ukraine", URL: "/flags/ua.svg", Region: "Europe"},
	{Name: "Croatia", URL: "/flags/hr.svg", Region: "Europe"},
	{Name: "Serbia", URL: "/flags/rs.svg", Region: "Europe"},
	{Name: "Slovakia", URL: "/flags/sk.svg", Region: "Europe"},
	{Name: "Slovenia", URL: "/flags/si.svg", Region: "Europe"},
	{Name: "Estonia", URL: "/flags/ee.svg", Region: "Europe"},
	{Name: "Latvia", URL: "/flags/lv.svg", Region: "Europe"},
	{Name: "Lithuania", URL: "/flags/lt.svg", Region: "Europe"},
	{Name: "Japan", URL: "/flags/jp.svg", Region: "Asia"},
	{Name: "China", URL: "/flags/cn.svg", Region: "Asia"},
	{Name: "India", URL: "/flags/in.svg", Region: "Asia"},
	{Name: "South Korea", URL: "/flags/kr.svg", Region: "Asia"},
	{Name: "Thailand", URL: "/flags/th.svg", Region: "Asia"},
	{Name: "Vietnam", URL: "/flags/vn.svg", Region: "Asia"},
	{Name: "Indonesia", URL: "/flags/id.svg", Region: "Asia"},
	{Name: "Malaysia", URL: "/flags/my.svg", Region: "Asia"},
	{Name: "Philippines", URL: "/flags/ph.svg", Region: "Asia"},
	{Name: "Singapore", URL: "/flags/sg.svg", Region: "Asia"},
	{Name: "Turkey", URL: "/flags/tr.svg", Region: "Asia"},
	{Name: "Israel", URL: "/flags/il.svg", Region: "Asia"},
	{Name: "Saudi Arabia", URL: "/flags/sa.svg", Region: "Asia"},
	{Name: "Pakistan", URL: "/flags/pk.svg", Region: "Asia"},
	{Name: "Bangladesh", URL: "/flags/bd.svg", Region: "Asia"},
	{Name: "Nepal", URL: "/flags/np.svg", Region: "Asia"},
	{Name: "Mongolia", URL: "/flags/mn.svg", Region: "Asia"},
	{Name: "Brazil", URL: "/flags/br.svg", Region: "South America"},
	{Name: "Argentina", URL: "/flags/ar.svg", Region: "South America"},
	{Name: "Chile", URL: "/flags/cl.svg", Region: "South America"},
	{Name: "Colombia", URL: "/flags/co.svg", Region: "South America"},
	{Name: "Peru", URL: "/flags/pe.svg", Region: "South America"},
	{Name: "Uruguay", URL: "/flags/uy.svg", Region: "South America"},
	{Name: "Venezuela", URL: "/flags/ve.svg", Region: "South America"},
	{Name: "Bolivia", URL: "/flags/bo.svg", Region: "South America"},
	{Name: "Ecuador", URL: "/flags/ec.svg", Region: "South America"},
	{Name: "Egypt", URL: "/flags/eg.svg", Region: "Africa"},
	{Name: "Nigeria", URL: "/flags/ng.svg", Region: "Africa"},
	{Name: "South Africa", URL: "/flags/za.svg", Region: "Africa"},
	{Name: "Kenya", URL: "/flags/ke.svg", Region: "Africa"},
	{Name: "Morocco", URL: "/flags/ma.svg", Region: "Africa"},
	{Name: "Ethiopia", URL: "/flags/et.svg", Region: "Africa"},
	{Name: "Ghana", URL: "/flags/gh.svg", Region: "Africa"},
	{Name: "Tunisia", URL: "/flags/tn.svg", Region: "Africa"},
	{Name: "Algeria", URL: "/flags/dz.svg", Region: "Africa"},
	{Name: "Senegal", URL: "/flags/sn.svg", Region: "Africa"},
	{Name: "Australia", URL: "/flags/au.svg", Region: "Oceania"},
	{Name: "New Zealand", URL: "/flags/nz.svg", Region: "Oceania"},
	{Name: "Fiji", URL: "/flags/fj.svg", Region: "Oceania"},
	{Name: "Papua New Guinea", URL: "/flags/pg.svg", Region: "Oceania"},
}

var usStateFlags = []flag{
	{Name: "Alabama", URL: "/flags/states/al.svg", Region: "South"},
	{Name: "Alaska", URL: "/flags/states/ak.svg", Region: "West"},
	{Name: "Arizona", URL: "/flags/states/az.svg", Region: "West"},
	{Name: "Arkansas", URL: "/flags/states/ar.svg", Region: "South"},
	{Name: "California", URL: "/flags/states/ca.svg", Region: "West"},
	{Name: "Colorado", URL: "/flags/states/co.svg", Region: "West"},
	{Name: "Connecticut", URL: "/flags/states/ct.svg", Region: "Northeast"},
	{Name: "Delaware", URL: "/flags/states/de.svg", Region: "South"},
	{Name: "Florida", URL: "/flags/states/fl.svg", Region: "South"},
	{Name: "Georgia", URL: "/flags/states/ga.svg", Region: "South"},
	{Name: "Hawaii", URL: "/flags/states/hi.svg", Region: "West"},
	{Name: "Idaho", URL: "/flags/states/id.svg", Region: "West"},
	{Name: "Illinois", URL: "/flags/states/il.svg", Region: "Midwest"},
	{Name: "Indiana", URL: "/flags/states/in.svg", Region: "Midwest"},
	{Name: "Iowa", URL: "/flags/states/ia.svg", Region: "Midwest"},
	{Name: "Kansas", URL: "/flags/states/ks.svg", Region: "Midwest"},
	{Name: "Kentucky", URL: "/flags/states/ky.svg", Region: "South"},
	{Name: "Louisiana", URL: "/flags/states/la.svg", Region: "South"},
	{Name: "Maine", URL: "/flags/states/me.svg", Region: "Northeast"},
	{Name: "Maryland", URL: "/flags/states/md.svg", Region: "South"},
	{Name: "Massachusetts", URL: "/flags/states/ma.svg", Region: "Northeast"},
	{Name: "Michigan", URL: "/flags/states/mi.svg", Region: "Midwest"},
	{Name: "Minnesota", URL: "/flags/states/mn.svg", Region: "Midwest"},
	{Name: "Mississippi", URL: "/flags/states/ms.svg", Region: "South"},
	{Name: "Missouri", URL: "/flags/states/mo.svg", Region: "Midwest"},
	{Name: "Montana", URL: "/flags/states/mt.svg", Region: "West"},
	{Name: "Nebraska", URL: "/flags/states/ne.svg", Region: "Midwest"},
	{Name: "Nevada", URL: "/flags/states/nv.svg", Region: "West"},
	{Name: "New Hampshire", URL: "/flags/states/nh.svg", Region: "Northeast"},
	{Name: "New Jersey", URL: "/flags/states/nj.svg", Region: "Northeast"},
	{Name: "New Mexico", URL: "/flags/states/nm.svg", Region: "West"},
	{Name: "New York", URL: "/flags/states/ny.svg", Region: "Northeast"},
	{Name: "North Carolina", URL: "/flags/states/nc.svg", Region: "South"},
	{Name: "North Dakota", URL: "/flags/states/nd.svg", Region: "Midwest"},
	{Name: "Ohio", URL: "/flags/states/oh.svg", Region: "Midwest"},
	{Name: "Oklahoma", URL: "/flags/states/ok.svg", Region: "South"},
	{Name: "Oregon", URL: "/flags/states/or.svg", Region: "West"},
	{Name: "Pennsylvania", URL: "/flags/states/pa.svg", Region: "Northeast"},
	{Name: "Rhode Island", URL: "/flags/states/ri.svg", Region: "Northeast"},
	{Name: "South Carolina", URL: "/flags/states/sc.svg", Region: "South"},
	{Name: "South Dakota", URL: "/flags/states/sd.svg", Region: "Midwest"},
	{Name: "Tennessee", URL: "/flags/states/tn.svg", Region: "South"},
	{Name: "Texas", URL: "/flags/states/tx.svg", Region: "South"},
	{Name: "Utah", URL: "/flags/states/ut.svg", Region: "West"},
	{Name: "Vermont", URL: "/flags/states/vt.svg", Region: "Northeast"},
	{Name: "Virginia", URL: "/flags/states/va.svg", Region: "South"},
	{Name: "Washington", URL: "/flags/states/wa.svg", Region: "West"},
	{Name: "West Virginia", URL: "/flags/states/wv.svg", Region: "South"},
	{Name: "Wisconsin", URL: "/flags/states/wi.svg", Region: "Midwest"},
	{Name: "Wyoming", URL: "/flags/states/wy.svg", Region: "West"},
}

// flagsForMode returns the dataset backing a game mode. Unknown modes fall
// back to the world set rather than failing, matching the permissive
// handling elsewhere in the protocol.
func flagsForMode(mode string) []flag {
	if mode == modeUS {
		return usStateFlags
	}
	return worldFlags
}
