package content

import "iot-site-backend/models"

// defaultDocuments is the built-in downloads-center catalog. Order here is
// display order; the filter preserves it.
func defaultDocuments() []models.DocumentRecord {
	return []models.DocumentRecord{
		{
			Title:           "X9000 Datasheet",
			Description:     "Full specifications for the X9000 industrial 5G router, including RF bands, environmental ratings and mounting options.",
			Type:            models.DocumentTypeDatasheet,
			Version:         "3.2",
			Date:            "June 12, 2026",
			FileSize:        "2.4 MB",
			DownloadURL:     "/files/x9000-datasheet-v3.2.pdf",
			Category:        "4G/5G Products",
			RelatedProducts: []string{"x9000"},
		},
		{
			Title:           "X9000 User Manual",
			Description:     "Installation, configuration and maintenance guide for the X9000 industrial 5G router.",
			Type:            models.DocumentTypeManual,
			Version:         "3.0",
			Date:            "May 2, 2026",
			FileSize:        "8.1 MB",
			DownloadURL:     "/files/x9000-manual-v3.0.pdf",
			Category:        "4G/5G Products",
			RelatedProducts: []string{"x9000"},
		},
		{
			Title:           "X9000 Firmware 2.7.1",
			Description:     "Firmware release for the X9000 with carrier aggregation fixes and updated modem drivers.",
			Type:            models.DocumentTypeFirmware,
			Version:         "2.7.1",
			Date:            "July 30, 2026",
			FileSize:        "64 MB",
			DownloadURL:     "/files/x9000-fw-2.7.1.bin",
			Category:        "4G/5G Products",
			RelatedProducts: []string{"x9000"},
		},
		{
			Title:           "X7100 Datasheet",
			Description:     "Specifications for the X7100 ruggedized 4G LTE router for fleet and remote-site connectivity.",
			Type:            models.DocumentTypeDatasheet,
			Version:         "1.8",
			Date:            "March 18, 2026",
			FileSize:        "1.9 MB",
			DownloadURL:     "/files/x7100-datasheet-v1.8.pdf",
			Category:        "4G/5G Products",
			RelatedProducts: []string{"x7100"},
		},
		{
			Title:           "E5212 Manual",
			Description:     "Wiring diagrams, register maps and Modbus configuration for the E5212 remote IO controller.",
			Type:            models.DocumentTypeManual,
			Version:         "2.1",
			Date:            "April 9, 2026",
			FileSize:        "5.6 MB",
			DownloadURL:     "/files/e5212-manual-v2.1.pdf",
			Category:        "Remote IO Controllers",
			RelatedProducts: []string{"e5212"},
		},
		{
			Title:           "E5212 Datasheet",
			Description:     "Channel counts, isolation ratings and protocol support for the E5212 remote IO controller.",
			Type:            models.DocumentTypeDatasheet,
			Version:         "2.0",
			Date:            "February 27, 2026",
			FileSize:        "1.2 MB",
			DownloadURL:     "/files/e5212-datasheet-v2.0.pdf",
			Category:        "Remote IO Controllers",
			RelatedProducts: []string{"e5212"},
		},
		{
			Title:           "E5212 Firmware 1.4.0",
			Description:     "Adds DNP3 outstation support and fixes analog input scaling on the E5212.",
			Type:            models.DocumentTypeFirmware,
			Version:         "1.4.0",
			Date:            "June 21, 2026",
			FileSize:        "18 MB",
			DownloadURL:     "/files/e5212-fw-1.4.0.bin",
			Category:        "Remote IO Controllers",
			RelatedProducts: []string{"e5212"},
		},
		{
			Title:           "Edge8000 Datasheet",
			Description:     "Compute, storage and expansion specifications for the Edge8000 edge computing gateway.",
			Type:            models.DocumentTypeDatasheet,
			Version:         "1.3",
			Date:            "May 14, 2026",
			FileSize:        "2.1 MB",
			DownloadURL:     "/files/edge8000-datasheet-v1.3.pdf",
			Category:        "Edge Computing",
			RelatedProducts: []string{"edge8000"},
		},
		{
			Title:           "Edge8000 SDK",
			Description:     "Container runtime, protocol libraries and sample applications for developing on the Edge8000.",
			Type:            models.DocumentTypeSoftware,
			Version:         "0.9.4",
			Date:            "July 8, 2026",
			FileSize:        "210 MB",
			DownloadURL:     "/files/edge8000-sdk-0.9.4.tar.gz",
			Category:        "Edge Computing",
			RelatedProducts: []string{"edge8000"},
		},
		{
			Title:           "Device Manager Desktop",
			Description:     "Windows and Linux configuration tool for provisioning routers and IO controllers in bulk.",
			Type:            models.DocumentTypeSoftware,
			Version:         "4.2.0",
			Date:            "June 3, 2026",
			FileSize:        "96 MB",
			DownloadURL:     "/files/device-manager-4.2.0.zip",
			Category:        "Edge Computing",
			RelatedProducts: []string{"x9000", "x7100", "e5212", "edge8000"},
		},
		{
			Title:           "Energy Management Solution Brief",
			Description:     "How substations and solar sites use cellular routers and edge gateways for telemetry backhaul.",
			Type:            models.DocumentTypeWhitepaper,
			Date:            "January 20, 2026",
			FileSize:        "3.4 MB",
			DownloadURL:     "/files/energy-solution-brief.pdf",
			Category:        "Solutions",
			RelatedProducts: []string{"x9000", "edge8000"},
		},
		{
			Title:           "Water Monitoring Solution Brief",
			Description:     "Pump station and wastewater network monitoring architectures built on remote IO controllers.",
			Type:            models.DocumentTypeWhitepaper,
			Date:            "February 11, 2026",
			FileSize:        "2.9 MB",
			DownloadURL:     "/files/water-solution-brief.pdf",
			Category:        "Solutions",
			RelatedProducts: []string{"e5212"},
		},
		{
			// Company-level collateral intentionally carries no category, so
			// it only surfaces under the "All" selector.
			Title:       "Industrial Connectivity Whitepaper",
			Description: "Private cellular, edge compute and the shape of modern plant networks.",
			Type:        models.DocumentTypeWhitepaper,
			Date:        "December 5, 2025",
			FileSize:    "4.7 MB",
			DownloadURL: "/files/industrial-connectivity.pdf",
		},
		{
			Title:       "Product Line Photography Pack",
			Description: "High-resolution product images for press and partner use.",
			Type:        models.DocumentTypeImage,
			Date:        "March 1, 2026",
			FileSize:    "140 MB",
			DownloadURL: "/files/product-photos.zip",
		},
	}
}

// defaultProducts is the built-in product catalog
func defaultProducts() []models.Product {
	return []models.Product{
		{
			ID:          "x9000",
			Name:        "X9000",
			Tagline:     "Industrial 5G router",
			Description: "Dual-SIM 5G router with link failover, hardened enclosure and -40 to +75 C operating range for plant and roadside deployments.",
			Category:    "4G/5G Products",
			Features:    []string{"Dual SIM with failover", "IP67 enclosure", "GPS and dead reckoning", "Remote fleet management"},
			PageURL:     "/products/x9000",
		},
		{
			ID:          "x7100",
			Name:        "X7100",
			Tagline:     "Ruggedized 4G LTE router",
			Description: "Compact LTE router for fleet vehicles and remote sites where 5G coverage is not yet available.",
			Category:    "4G/5G Products",
			Features:    []string{"9-36 V vehicle power", "CAN bus interface", "Wi-Fi hotspot mode"},
			PageURL:     "/products/x7100",
		},
		{
			ID:          "e5212",
			Name:        "E5212",
			Tagline:     "Remote IO controller",
			Description: "16-channel mixed-signal remote IO controller speaking Modbus RTU/TCP and DNP3, built for pump stations and substations.",
			Category:    "Remote IO Controllers",
			Features:    []string{"Isolated analog inputs", "Relay outputs", "Modbus and DNP3", "Local logic engine"},
			PageURL:     "/products/e5212",
		},
		{
			ID:          "edge8000",
			Name:        "Edge8000",
			Tagline:     "Edge computing gateway",
			Description: "Fanless edge gateway running containerized workloads next to the process, with built-in protocol translation and store-and-forward.",
			Category:    "Edge Computing",
			Features:    []string{"Container runtime", "Protocol translation", "Store and forward", "TPM 2.0"},
			PageURL:     "/products/edge8000",
		},
	}
}

// defaultOpenings is the built-in careers-page content
func defaultOpenings() []models.JobOpening {
	return []models.JobOpening{
		{
			ID:         "fw-eng-01",
			Title:      "Embedded Firmware Engineer",
			Department: "Engineering",
			Location:   "Rotterdam, NL",
			Type:       "full-time",
			Summary:    "Own the cellular router firmware stack, from modem integration to OTA updates.",
		},
		{
			ID:         "fae-emea-01",
			Title:      "Field Application Engineer, EMEA",
			Department: "Sales Engineering",
			Location:   "Remote, EMEA",
			Type:       "full-time",
			Summary:    "Help utilities and integrators design telemetry networks around our hardware.",
		},
		{
			ID:         "qa-eng-02",
			Title:      "Hardware Test Engineer",
			Department: "Engineering",
			Location:   "Rotterdam, NL",
			Type:       "full-time",
			Summary:    "Build and run environmental and compliance test programs for new products.",
		},
		{
			ID:         "mkt-03",
			Title:      "Technical Content Writer",
			Department: "Marketing",
			Location:   "Remote, EU",
			Type:       "contract",
			Summary:    "Turn engineering release notes into datasheets, briefs and launch material.",
		},
	}
}
