package sqlinline

const QInsertCamp = `--sql f2dc3f36-885f-4b78-b68f-03eb4fe3c47a
insert into camps (id, camp_name, date_time, location, healthcare_professional, camp_fees, description, image, participant_count, created_at)
values (gen_random_uuid(), $1::text, $2::text, $3::text, $4::text, $5::text, $6::text, $7::text, 0, now())
returning id;
`

const QSelectCampByID = `--sql e81121bb-64b5-46dc-83f3-bb9619e5a274
select id, camp_name, date_time, location, healthcare_professional, camp_fees, description, image, participant_count, created_at
from camps
where id = $1::uuid
limit 1;
`

const QSearchCamps = `--sql 1b432643-8d1a-4c1b-aab8-bd29265b53f7
select id, camp_name, date_time, location, healthcare_professional, camp_fees, description, image, participant_count, created_at
from camps
where $1::text = ''
   or camp_name ilike '%' || $1::text || '%'
   or date_time ilike '%' || $1::text || '%'
   or healthcare_professional ilike '%' || $1::text || '%'
order by created_at desc;
`

const QSelectPopularCamps = `--sql 41cdbba0-f7b0-4f9d-8558-ff7a87cc1807
select id, camp_name, date_time, location, healthcare_professional, camp_fees, description, image, participant_count, created_at
from camps
order by participant_count desc
limit 6;
`

const QUpdateCamp = `--sql 2a4409a5-5643-4705-affe-386b5ff07309
update camps
set camp_name = $2::text,
    image = $3::text,
    camp_fees = $4::text,
    date_time = $5::text,
    location = $6::text,
    healthcare_professional = $7::text,
    description = $8::text,
    participant_count = coalesce($9::int, participant_count)
where id = $1::uuid;
`

const QDeleteCamp = `--sql 093988a7-8004-4a4c-837b-6b224ebe207d
delete from camps
where id = $1::uuid;
`

const QIncrementCampCount = `--sql 1f4a0815-69a2-46fe-98bf-33a1dc61a14b
update camps
set participant_count = participant_count + 1
where id = $1::uuid;
`

const QDecrementCampCount = `--sql ef491172-090c-42a0-8028-d8661f2b3b50
update camps
set participant_count = greatest(participant_count - 1, 0)
where id = $1::uuid;
`
