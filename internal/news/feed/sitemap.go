// Copyright (c) 2026 Polarnews Media. All rights reserved.
// Author: dev@polarnews.gl

package feed

import "encoding/xml"

// # Sitemap Documents

// xmlDeclaration is emitted verbatim ahead of every rendered document.
const xmlDeclaration = `<?xml version="1.0" encoding="utf-8"?>` + "\n"

const (
	sitemapNamespace = "http://www.sitemaps.org/schemas/sitemap/0.9"
	imageNamespace   = "http://www.google.com/schemas/sitemap-image/1.1"
	newsNamespace    = "http://www.google.com/schemas/sitemap-news/0.9"
)

// urlSet is a standard sitemap document with the image extension enabled.
type urlSet struct {
	XMLName  xml.Name `xml:"urlset"`
	Xmlns    string   `xml:"xmlns,attr"`
	XmlnsImg string   `xml:"xmlns:image,attr"`
	URLs     []urlEntry
}

type urlEntry struct {
	XMLName xml.Name    `xml:"url"`
	Loc     string      `xml:"loc"`
	LastMod string      `xml:"lastmod,omitempty"`
	Image   *imageEntry `xml:"image:image,omitempty"`
}

type imageEntry struct {
	Loc string `xml:"image:loc"`
}

// newsURLSet is a Google News sitemap document.
type newsURLSet struct {
	XMLName   xml.Name `xml:"urlset"`
	Xmlns     string   `xml:"xmlns,attr"`
	XmlnsNews string   `xml:"xmlns:news,attr"`
	URLs      []newsURLEntry
}

type newsURLEntry struct {
	XMLName xml.Name  `xml:"url"`
	Loc     string    `xml:"loc"`
	News    newsEntry `xml:"news:news"`
}

type newsEntry struct {
	Publication     newsPublication `xml:"news:publication"`
	PublicationDate string          `xml:"news:publication_date"`
	Title           string          `xml:"news:title"`
	Keywords        string          `xml:"news:keywords,omitempty"`
	GeoLocations    string          `xml:"news:geo_locations"`
}

type newsPublication struct {
	Name     string `xml:"news:name"`
	Language string `xml:"news:language"`
}

// render serializes a sitemap document with the XML declaration prepended.
func render(document any) ([]byte, error) {
	body, err := xml.MarshalIndent(document, "", "  ")
	if err != nil {
		return nil, err
	}

	return append([]byte(xmlDeclaration), body...), nil
}
